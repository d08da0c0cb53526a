/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package config

type ResilienceConfig struct {
	Resilience struct {
		RateLimiter RateLimiterConfig `yaml:"rate_limiter"`
	} `yaml:"resilience"`
}

type RateLimiterConfig struct {
	Limit   uint64 `yaml:"limit" env:"RATE_LIMIT,overwrite"`
	IPLimit uint64 `yaml:"iplimit" env:"RATE_LIMIT_IP,overwrite"`
}

func (rc *ResilienceConfig) Validate() error {
	return nil
}

func BuildNewResilienceConfig(path string) func() (*ResilienceConfig, error) {
	return func() (*ResilienceConfig, error) {
		var config ResilienceConfig
		config.Resilience.RateLimiter.Limit = 3000
		config.Resilience.RateLimiter.IPLimit = 20
		if err := Load(path, &config); err != nil {
			return nil, err
		}

		return &config, config.Validate()
	}
}
