/*
 * Copyright (c) 2025, SLPost Labs. (https://slpost.dev).
 *
 * SLPost Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

// LoadConfig reads the deployment configuration file relative to pdsHome.
// Environment variable references in the file are expanded before parsing.
func LoadConfig(pdsHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(pdsHome, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
