/*
Copyright 2024 The ecr-mirror Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package ecr talks to the Amazon ECR control plane: it discovers the
// repositories annotated for mirroring, lists the tags already pushed
// to a destination repository and mints the registry credentials the
// copy tool needs.
package ecr

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const roleSessionName = "ecr-mirror"

// API is the subset of the ECR control plane the mirror consumes.
type API interface {
	DescribeRepositories(
		ctx context.Context,
		params *awsecr.DescribeRepositoriesInput,
		optFns ...func(*awsecr.Options),
	) (*awsecr.DescribeRepositoriesOutput, error)
	DescribeImages(
		ctx context.Context,
		params *awsecr.DescribeImagesInput,
		optFns ...func(*awsecr.Options),
	) (*awsecr.DescribeImagesOutput, error)
	ListTagsForResource(
		ctx context.Context,
		params *awsecr.ListTagsForResourceInput,
		optFns ...func(*awsecr.Options),
	) (*awsecr.ListTagsForResourceOutput, error)
	GetAuthorizationToken(
		ctx context.Context,
		params *awsecr.GetAuthorizationTokenInput,
		optFns ...func(*awsecr.Options),
	) (*awsecr.GetAuthorizationTokenOutput, error)
}

// Client wraps the ECR API for one registry account.
type Client struct {
	api        API
	registryID string

	// metadataConcurrency bounds the parallel ListTagsForResource
	// calls during catalog discovery.
	metadataConcurrency int
}

// NewClient builds a Client from the ambient AWS configuration,
// optionally assuming roleARN first. metadataConcurrency bounds the
// catalog discovery fan-out; values below one select the default.
func NewClient(
	ctx context.Context, registryID, roleARN string, metadataConcurrency int,
) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading AWS configuration")
	}

	if roleARN != "" {
		logrus.Infof("assuming role %s", roleARN)
		provider := stscreds.NewAssumeRoleProvider(
			sts.NewFromConfig(cfg),
			roleARN,
			func(o *stscreds.AssumeRoleOptions) {
				o.RoleSessionName = roleSessionName
				o.Duration = time.Hour
			},
		)
		cfg.Credentials = aws.NewCredentialsCache(provider)
	}

	return newClient(awsecr.NewFromConfig(cfg), registryID, metadataConcurrency), nil
}

// NewClientWithAPI wires an explicit API implementation, used by
// tests.
func NewClientWithAPI(api API, registryID string, metadataConcurrency int) *Client {
	return newClient(api, registryID, metadataConcurrency)
}

func newClient(api API, registryID string, metadataConcurrency int) *Client {
	if metadataConcurrency <= 0 {
		metadataConcurrency = defaultMetadataConcurrency
	}
	return &Client{
		api:                 api,
		registryID:          registryID,
		metadataConcurrency: metadataConcurrency,
	}
}

// AuthorizationToken returns the user:password pair the destination
// registry accepts, decoded from the ECR authorization token.
func (c *Client) AuthorizationToken(ctx context.Context) (string, error) {
	out, err := c.api.GetAuthorizationToken(
		ctx, &awsecr.GetAuthorizationTokenInput{},
	)
	if err != nil {
		return "", errors.Wrap(err, "getting ECR authorization token")
	}
	if len(out.AuthorizationData) == 0 || out.AuthorizationData[0].AuthorizationToken == nil {
		return "", errors.New("empty ECR authorization data")
	}

	decoded, err := base64.StdEncoding.DecodeString(
		*out.AuthorizationData[0].AuthorizationToken,
	)
	if err != nil {
		return "", errors.Wrap(err, "decoding ECR authorization token")
	}
	return string(decoded), nil
}

// registryId returns the DescribeRepositories/DescribeImages registry
// parameter, nil when the default registry of the credentials applies.
func (c *Client) registryId() *string {
	if c.registryID == "" {
		return nil
	}
	return aws.String(c.registryID)
}
