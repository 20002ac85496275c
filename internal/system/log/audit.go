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

package log

import (
	"encoding/json"
	"time"
)

// AuditEvent records a moderation or admin action against the directory.
type AuditEvent struct {
	RecordedAt  string      `json:"recordedAt"`
	ActorID     string      `json:"actorId"`
	ActorRole   string      `json:"actorRole"`
	TargetID    string      `json:"targetId"`
	TargetType  string      `json:"targetType"`
	Action      string      `json:"action"`
	Outcome     string      `json:"outcome"`
	Data        interface{} `json:"data,omitempty"`
}

// Audit logs an audit event with structured fields.
func (l *Logger) Audit(event AuditEvent) {
	if event.RecordedAt == "" {
		event.RecordedAt = time.Now().UTC().Format(time.RFC3339)
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		l.Error("Failed to marshal audit event", Error(err))
		return
	}

	l.Info("AUDIT", String("event", string(jsonData)))
}
