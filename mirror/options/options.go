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

package options

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

// Options capture the switches available to run the mirror.
type Options struct {
	// RegistryID is the destination registry, usually the AWS account
	// ID. Empty means the default registry of the credentials.
	RegistryID string `yaml:"registryID"`

	// RoleARN is an optional role to assume before talking to ECR.
	RoleARN string `yaml:"roleARN"`

	// OverrideOS pins the image OS requested from upstream.
	OverrideOS string `yaml:"overrideOS"`

	// OverrideArch pins the image architecture requested from
	// upstream. The value "all" mirrors every architecture.
	OverrideArch string `yaml:"overrideArch"`

	// MaxConcurrentRepositories bounds repository-level fan-out.
	MaxConcurrentRepositories int `yaml:"maxConcurrentRepositories"`

	// MaxConcurrentCopies bounds the copy invocations in flight,
	// globally across all repositories.
	MaxConcurrentCopies int `yaml:"maxConcurrentCopies"`

	// RequestsPerSecond caps how fast copy tool invocations are
	// started.
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
}

// Default returns the options used when no flag or file overrides
// them.
func Default() *Options {
	return &Options{
		OverrideOS:                "linux",
		OverrideArch:              "amd64",
		MaxConcurrentRepositories: 8,
		MaxConcurrentCopies:       4,
		RequestsPerSecond:         5,
	}
}

// FromFile layers a YAML file over the defaults.
func FromFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks an options set.
func (o *Options) Validate() error {
	if o.OverrideOS == "" {
		return errors.New("an override OS has to be set")
	}
	if o.OverrideArch == "" {
		return errors.New("an override architecture has to be set")
	}
	if o.MaxConcurrentRepositories <= 0 || o.MaxConcurrentCopies <= 0 {
		return errors.New("concurrency bounds have to be positive")
	}
	if o.RequestsPerSecond <= 0 {
		return errors.New("the request rate has to be positive")
	}
	return nil
}
