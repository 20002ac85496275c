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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig(t *testing.T) {

	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "repository", "conf"), 0o755))

	t.Setenv("PDS_TEST_DB_PASSWORD", "s3cret")
	doc := `
addr:
  host: "127.0.0.1"
  port: 8090
log:
  log_level: "DEBUG"
datasource:
  hostname: "localhost"
  port: 5432
  name: "postal_directory"
  username: "pds"
  password: "${PDS_TEST_DB_PASSWORD}"
  sslmode: "disable"
notification:
  enabled: true
  relay_endpoint: "https://relay.example.com"
`
	require.NoError(t, os.WriteFile(
		filepath.Join(home, "repository", "conf", "deployment.yaml"), []byte(doc), 0o644))

	cfg, err := LoadConfig(home, "/repository/conf/deployment.yaml")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Addr.Host)
	assert.Equal(t, 8090, cfg.Addr.Port)
	assert.Equal(t, "DEBUG", cfg.Log.LogLevel)
	assert.Equal(t, "s3cret", cfg.DataSource.Password, "env references must expand")
	assert.True(t, cfg.Notification.Enabled)
}

func Test_LoadConfig_MissingFile(t *testing.T) {

	_, err := LoadConfig(t.TempDir(), "/repository/conf/deployment.yaml")
	assert.Error(t, err)
}
