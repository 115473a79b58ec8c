/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package alice defines the top-level exit codes and telemetry event shape
// used by the telemetry and cmd/alice-search packages.
//
// The index build/query engine itself lives in fmindex, which does not
// import alice; alice only carries the exit codes and the Event/Listener
// shape so that the shell-side packages share one definition of each.
package alice

// Exit codes returned by cmd/alice-search, mirroring the CLI's own argument
// and I/O failure taxonomy.
const (
	ERR_MISSING_PARAM = 1
	ERR_INVALID_PARAM = 2
	ERR_INVALID_STEP  = 3
	ERR_OPEN_FILE     = 4
	ERR_READ_FILE     = 5
	ERR_BUILD_INDEX   = 6
	ERR_UNKNOWN       = 127
)
