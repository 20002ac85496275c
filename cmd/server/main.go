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

package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/slpost/postal-directory-service/internal/system/config"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	"github.com/slpost/postal-directory-service/internal/system/log"
	"github.com/slpost/postal-directory-service/internal/system/managers"
)

func main() {

	pdsHome := resolvePDSHome()
	const configFile = "/repository/conf/deployment.yaml"

	envFiles, err := filepath.Glob("config/*.env")
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	pdsConfig, err := config.LoadConfig(pdsHome, configFile)
	if err != nil {
		fmt.Println("Failed to load configuration.", err)
		os.Exit(1)
	}

	if err := config.InitializePDSRuntime(pdsHome, pdsConfig); err != nil {
		fmt.Println("Failed to initialize runtime.", err)
		os.Exit(1)
	}

	if err := log.Init(pdsConfig.Log.LogLevel); err != nil {
		fmt.Println("Failed to initialize logger.", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	verifyDataSourceConfig(pdsConfig)

	serverAddr := fmt.Sprintf("%s:%d", pdsConfig.Addr.Host, pdsConfig.Addr.Port)
	mux := enableCORS(initMultiplexer(), pdsConfig.Auth.CORSAllowedOrigins)

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener.", log.Error(err))
	}
	logger.Info(fmt.Sprintf("Postal directory service listening on %s", serverAddr))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests.", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services.", log.Error(err))
	}
	return mux
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {

	allowed := map[string]bool{}
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed["*"] {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func verifyDataSourceConfig(conf *config.Config) {

	logger := log.GetLogger()
	ds := conf.DataSource
	if ds.Hostname == "" || ds.Username == "" || ds.Name == "" {
		logger.Fatal("One or more datasource configuration values are missing.")
	}
	logger.Info(fmt.Sprintf("Datasource configured - db name:%s, db host:%s, db port:%d",
		ds.Name, ds.Hostname, ds.Port))
}

// resolvePDSHome parses flags and determines the service home directory.
func resolvePDSHome() string {

	pdsHomeFlag := flag.String("pdsHome", "", "Path to the postal directory service home directory")
	if !flag.Parsed() {
		flag.Parse()
	}
	if *pdsHomeFlag != "" {
		return *pdsHomeFlag
	}
	if envHome := os.Getenv("PDS_HOME"); envHome != "" {
		return envHome
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Println("Failed to get current working directory.", err)
		os.Exit(1)
	}
	return dir
}
