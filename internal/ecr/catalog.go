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

package ecr

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/nozzle/throttler"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/onfido/ecr-mirror/internal/container"
	"github.com/onfido/ecr-mirror/internal/syncer"
)

// Resource tag keys carrying the mirror directives on an ECR
// repository. Tag values cannot contain `*`, so glob patterns store
// `+` in its place (translated back by the glob compiler).
const (
	TagUpstreamImage = "upstream-image"
	TagUpstreamTags  = "upstream-tags"
	TagIgnoreTags    = "ignore-tags"
)

// globSeparator splits the tag-glob list inside one resource tag
// value.
const globSeparator = "/"

// defaultMetadataConcurrency is the catalog discovery fan-out used
// when the caller does not configure one.
const defaultMetadataConcurrency = 8

// ListMirrorSpecs enumerates every repository in the registry and
// parses the mirror directives of those annotated with an
// upstream-image tag. Malformed directives are logged and skipped so
// one bad repository never blocks the rest of the pass.
func (c *Client) ListMirrorSpecs(ctx context.Context) ([]syncer.MirrorSpec, error) {
	repos, err := c.describeRepositories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "describing repositories")
	}

	metadata := make([]map[string]string, len(repos))
	t := throttler.New(c.metadataConcurrency, len(repos))
	for i, repo := range repos {
		go func(i int, repo ecrtypes.Repository) {
			tags, err := c.resourceTags(ctx, repo.RepositoryArn)
			if err != nil {
				// Scoped to this repository: it is treated as not
				// annotated for mirroring this pass.
				logrus.Warnf(
					"skipping repository %s: listing resource tags: %v",
					aws.ToString(repo.RepositoryName), err,
				)
			} else {
				metadata[i] = tags
			}
			t.Done(nil)
		}(i, repo)
		t.Throttle()
	}

	specs := []syncer.MirrorSpec{}
	for i, repo := range repos {
		if metadata[i] == nil {
			continue
		}
		spec, ok := parseMirrorSpec(repo, metadata[i])
		if ok {
			specs = append(specs, spec)
		}
	}
	return specs, nil
}

// ListImageTags returns every tag currently present in a destination
// repository. This set is the sole record of what is already mirrored.
func (c *Client) ListImageTags(
	ctx context.Context, repositoryName string,
) (container.Set[string], error) {
	tags := container.NewSet[string]()

	paginator := awsecr.NewDescribeImagesPaginator(c.api, &awsecr.DescribeImagesInput{
		RepositoryName: aws.String(repositoryName),
		RegistryId:     c.registryId(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "describing images in %s", repositoryName)
		}
		for _, detail := range page.ImageDetails {
			for _, tag := range detail.ImageTags {
				tags.Insert(tag)
			}
		}
	}
	return tags, nil
}

func (c *Client) describeRepositories(ctx context.Context) ([]ecrtypes.Repository, error) {
	repos := []ecrtypes.Repository{}

	paginator := awsecr.NewDescribeRepositoriesPaginator(
		c.api, &awsecr.DescribeRepositoriesInput{RegistryId: c.registryId()},
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		repos = append(repos, page.Repositories...)
	}
	return repos, nil
}

func (c *Client) resourceTags(
	ctx context.Context, resourceARN *string,
) (map[string]string, error) {
	out, err := c.api.ListTagsForResource(ctx, &awsecr.ListTagsForResourceInput{
		ResourceArn: resourceARN,
	})
	if err != nil {
		return nil, err
	}

	tags := make(map[string]string, len(out.Tags))
	for _, tag := range out.Tags {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return tags, nil
}

// parseMirrorSpec turns one repository's resource tags into a mirror
// spec. The second return value is false when the repository is not
// configured for mirroring or its directives are unusable.
func parseMirrorSpec(
	repo ecrtypes.Repository, metadata map[string]string,
) (syncer.MirrorSpec, bool) {
	repoName := aws.ToString(repo.RepositoryName)
	log := logrus.WithField("repository", repoName)

	upstream, ok := metadata[TagUpstreamImage]
	if !ok {
		return syncer.MirrorSpec{}, false
	}
	if upstream == "" {
		log.Warnf("skipping: %s tag is empty", TagUpstreamImage)
		return syncer.MirrorSpec{}, false
	}
	if _, err := name.ParseReference(upstream); err != nil {
		log.Warnf("skipping: unparseable upstream image %q: %v", upstream, err)
		return syncer.MirrorSpec{}, false
	}

	globs, err := compileGlobList(metadata[TagUpstreamTags])
	if err != nil {
		log.Warnf("skipping: bad %s value: %v", TagUpstreamTags, err)
		return syncer.MirrorSpec{}, false
	}
	ignoreGlobs, err := compileGlobList(metadata[TagIgnoreTags])
	if err != nil {
		log.Warnf("skipping: bad %s value: %v", TagIgnoreTags, err)
		return syncer.MirrorSpec{}, false
	}
	if len(globs) == 0 && len(ignoreGlobs) == 0 {
		// An empty glob list means "do not sync".
		log.Debugf("skipping: no %s globs configured", TagUpstreamTags)
		return syncer.MirrorSpec{}, false
	}

	return syncer.MirrorSpec{
		RepositoryName: repoName,
		RepositoryURI:  aws.ToString(repo.RepositoryUri),
		UpstreamImage:  upstream,
		TagGlobs:       globs,
		IgnoreGlobs:    ignoreGlobs,
	}, true
}

func compileGlobList(value string) ([]syncer.TagGlob, error) {
	globs := []syncer.TagGlob{}
	for _, raw := range strings.Split(value, globSeparator) {
		if raw == "" {
			continue
		}
		glob, err := syncer.CompileGlob(raw)
		if err != nil {
			return nil, err
		}
		globs = append(globs, glob)
	}
	return globs, nil
}
