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

import "sync"

// PDSRuntime holds the runtime configuration for the directory server.
type PDSRuntime struct {
	PDSHome string `yaml:"pds_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *PDSRuntime
	once          sync.Once
)

// InitializePDSRuntime initializes the PDSRuntime configuration.
func InitializePDSRuntime(pdsHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &PDSRuntime{
			PDSHome: pdsHome,
			Config:  *config,
		}
	})

	return nil
}

// GetPDSRuntime returns the PDSRuntime configuration.
func GetPDSRuntime() *PDSRuntime {

	if runtimeConfig == nil {
		panic("PDSRuntime is not initialized")
	}
	return runtimeConfig
}

// OverridePDSRuntime replaces the runtime configuration. Intended for tests.
func OverridePDSRuntime(conf Config) {
	runtimeConfig = &PDSRuntime{
		Config: conf,
	}
}
