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

package notification

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/slpost/postal-directory-service/internal/system/config"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// Kind identifies which lifecycle event the submitter is told about.
type Kind string

const (
	KindReceived Kind = "RECEIVED"
	KindApproved Kind = "APPROVED"
	KindRejected Kind = "REJECTED"
	KindMoreInfo Kind = "MORE_INFO"
)

// Notifier delivers submitter-facing notifications. Delivery is strictly
// best-effort: implementations log failures and never return them, so a
// broken relay cannot fail or roll back the operation that triggered the
// notification.
type Notifier interface {
	Notify(kind Kind, submitterEmail, submitterName, recordName string)
}

// RelayNotifier posts messages to the configured transactional email relay.
type RelayNotifier struct {
	client *resty.Client
	cfg    config.NotificationConfig
}

// NewNotifier builds a notifier from the runtime configuration. When the
// relay is disabled the returned notifier only logs.
func NewNotifier() Notifier {

	cfg := config.GetPDSRuntime().Config.Notification
	if !cfg.Enabled || cfg.RelayEndpoint == "" {
		return &logNotifier{}
	}

	client := resty.New().
		SetBaseURL(cfg.RelayEndpoint).
		SetTimeout(5 * time.Second).
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &RelayNotifier{client: client, cfg: cfg}
}

type emailPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Notify sends one email through the relay. Errors are swallowed after
// logging.
func (n *RelayNotifier) Notify(kind Kind, submitterEmail, submitterName, recordName string) {

	logger := log.GetLogger()
	subject, body := composeMessage(kind, submitterName, recordName)
	if subject == "" {
		logger.Warn("Dropping notification of unknown kind", log.String("kind", string(kind)))
		return
	}

	resp, err := n.client.R().
		SetBody(emailPayload{
			From:    n.cfg.FromAddress,
			To:      submitterEmail,
			Subject: subject,
			Text:    body,
		}).
		Post("/emails")
	if err != nil {
		logger.Warn("Failed to deliver notification", log.String("kind", string(kind)), log.Error(err))
		return
	}
	if resp.IsError() {
		logger.Warn("Notification relay rejected message",
			log.String("kind", string(kind)), log.Int("status", resp.StatusCode()))
		return
	}
	logger.Debug("Notification delivered", log.String("kind", string(kind)))
}

// composeMessage renders the subject and body for a lifecycle event.
func composeMessage(kind Kind, submitterName, recordName string) (string, string) {

	switch kind {
	case KindReceived:
		return fmt.Sprintf("We received your suggestion for %s", recordName),
			fmt.Sprintf("Hi %s,\n\nThanks for your suggestion for %s. Our moderators will review it shortly.\n", submitterName, recordName)
	case KindApproved:
		return fmt.Sprintf("Your suggestion for %s was approved", recordName),
			fmt.Sprintf("Hi %s,\n\nYour suggested changes to %s have been approved and applied to the directory.\n", submitterName, recordName)
	case KindRejected:
		return fmt.Sprintf("Your suggestion for %s was not accepted", recordName),
			fmt.Sprintf("Hi %s,\n\nAfter review, your suggested changes to %s were not accepted.\n", submitterName, recordName)
	case KindMoreInfo:
		return fmt.Sprintf("More information needed for your %s suggestion", recordName),
			fmt.Sprintf("Hi %s,\n\nOur moderators need more information about your suggested changes to %s. Please reply with additional details.\n", submitterName, recordName)
	}
	return "", ""
}

// logNotifier is used when no relay is configured.
type logNotifier struct{}

func (n *logNotifier) Notify(kind Kind, _, _, recordName string) {

	log.GetLogger().Info("Notification suppressed (relay disabled)",
		log.String("kind", string(kind)),
		log.String("record", recordName))
}
