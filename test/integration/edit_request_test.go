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

package integration

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dirmodel "github.com/slpost/postal-directory-service/internal/directory/model"
	dirservice "github.com/slpost/postal-directory-service/internal/directory/service"
	model "github.com/slpost/postal-directory-service/internal/editrequest/model"
	"github.com/slpost/postal-directory-service/internal/editrequest/service"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
)

func createTestOffice(t *testing.T) *dirmodel.PostOffice {
	t.Helper()
	office, err := dirservice.GetOfficeService().CreateOffice(dirmodel.OfficeUpsertRequest{
		Name:       fmt.Sprintf("Matara-%d", time.Now().UnixNano()),
		PostalCode: "81000",
		Fields:     []dirmodel.FieldInput{{Name: "Phone", Value: "041-1111111"}},
	})
	require.NoError(t, err, "Failed to create office")
	t.Cleanup(func() {
		_ = dirservice.GetOfficeService().DeleteOffice(office.OfficeID)
	})
	return office
}

func submitSuggestion(t *testing.T, officeID string, changes model.SubmissionRequest) *model.EditRequest {
	t.Helper()
	changes.OfficeID = officeID
	if changes.SubmitterEmail == "" {
		changes.SubmitterEmail = fmt.Sprintf("visitor-%d@example.com", time.Now().UnixNano())
	}
	if changes.SubmitterName == "" {
		changes.SubmitterName = "Visitor"
	}
	req, err := service.GetEditRequestService().SubmitEditRequest(changes)
	require.NoError(t, err, "Failed to submit suggestion")
	return req
}

func Test_EditRequestLifecycle_Approve(t *testing.T) {

	office := createTestOffice(t)
	editService := service.GetEditRequestService()

	req := submitSuggestion(t, office.OfficeID, model.SubmissionRequest{
		ProposedPostalCode: "81001",
		ProposedFields:     []model.FieldProposal{{Name: "Phone", Value: "041-2222222"}},
	})
	assert.Equal(t, constants.StatusPending, req.Status)

	t.Run("Request_appears_in_queue", func(t *testing.T) {
		queue, err := editService.ListOpenRequests()
		require.NoError(t, err)
		found := false
		for _, v := range queue {
			if v.RequestID == req.RequestID {
				found = true
				assert.Equal(t, "81001", v.Diff.PostalCode)
			}
		}
		assert.True(t, found, "Submitted request missing from queue")
	})

	t.Run("Approve_applies_diff", func(t *testing.T) {
		view, err := editService.Decide(model.DecisionRequest{
			RequestID: req.RequestID,
			Action:    constants.ActionApprove,
		}, "mod-1")
		require.NoError(t, err)
		assert.Equal(t, constants.StatusApproved, view.Status)

		updated, err := dirservice.GetOfficeService().GetOffice(office.OfficeID)
		require.NoError(t, err)
		assert.Equal(t, "81001", updated.PostalCode)
		phone := updated.Field("Phone")
		require.NotNil(t, phone)
		assert.Equal(t, "041-2222222", phone.Value)
		// Name was not part of the diff and stays untouched.
		assert.Equal(t, office.Name, updated.Name)
	})

	t.Run("Second_decision_is_rejected", func(t *testing.T) {
		_, err := editService.Decide(model.DecisionRequest{
			RequestID: req.RequestID,
			Action:    constants.ActionReject,
		}, "mod-2")
		require.Error(t, err)
		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, errors2.EDIT_REQUEST_ALREADY_PROCESSED.Code, clientErr.Code)
	})
}

func Test_EditRequestLifecycle_RejectLeavesRecordUntouched(t *testing.T) {

	office := createTestOffice(t)
	editService := service.GetEditRequestService()

	req := submitSuggestion(t, office.OfficeID, model.SubmissionRequest{
		ProposedPostalCode: "99999",
	})

	view, err := editService.Decide(model.DecisionRequest{
		RequestID: req.RequestID,
		Action:    constants.ActionReject,
	}, "mod-1")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRejected, view.Status)

	unchanged, err := dirservice.GetOfficeService().GetOffice(office.OfficeID)
	require.NoError(t, err)
	assert.Equal(t, "81000", unchanged.PostalCode)
}

func Test_EditRequestLifecycle_MoreInfoStaysOpen(t *testing.T) {

	office := createTestOffice(t)
	editService := service.GetEditRequestService()

	req := submitSuggestion(t, office.OfficeID, model.SubmissionRequest{
		ProposedName: office.Name + " Central",
	})

	view, err := editService.Decide(model.DecisionRequest{
		RequestID: req.RequestID,
		Action:    constants.ActionMoreInfo,
	}, "mod-1")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusMoreInfo, view.Status)

	t.Run("Still_in_queue", func(t *testing.T) {
		queue, err := editService.ListOpenRequests()
		require.NoError(t, err)
		found := false
		for _, v := range queue {
			if v.RequestID == req.RequestID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("Approvable_afterwards", func(t *testing.T) {
		decided, err := editService.Decide(model.DecisionRequest{
			RequestID: req.RequestID,
			Action:    constants.ActionApprove,
		}, "mod-1")
		require.NoError(t, err)
		assert.Equal(t, constants.StatusApproved, decided.Status)
	})
}

func Test_EditRequestLifecycle_ConcurrentDecisions(t *testing.T) {

	office := createTestOffice(t)
	editService := service.GetEditRequestService()

	req := submitSuggestion(t, office.OfficeID, model.SubmissionRequest{
		ProposedPostalCode: "81002",
	})

	// Two moderators decide simultaneously; exactly one must win.
	actions := []string{constants.ActionApprove, constants.ActionReject}
	errs := make([]error, len(actions))
	var wg sync.WaitGroup
	for i := range actions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = editService.Decide(model.DecisionRequest{
				RequestID: req.RequestID,
				Action:    actions[i],
			}, fmt.Sprintf("mod-%d", i))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "Exactly one concurrent decision must succeed")
}

func Test_SubmitEditRequest_UnknownOffice(t *testing.T) {

	_, err := service.GetEditRequestService().SubmitEditRequest(model.SubmissionRequest{
		OfficeID:           "00000000-0000-0000-0000-000000000000",
		SubmitterEmail:     "visitor@example.com",
		SubmitterName:      "Visitor",
		ProposedPostalCode: "10000",
	})
	require.Error(t, err)
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.OFFICE_NOT_FOUND.Code, clientErr.Code)
}

func Test_SubmitEditRequest_ReusesContributorByEmail(t *testing.T) {

	office := createTestOffice(t)
	email := fmt.Sprintf("repeat-%d@example.com", time.Now().UnixNano())

	first := submitSuggestion(t, office.OfficeID, model.SubmissionRequest{
		SubmitterEmail:     email,
		SubmitterName:      "Repeat Visitor",
		ProposedPostalCode: "81003",
	})
	second := submitSuggestion(t, office.OfficeID, model.SubmissionRequest{
		SubmitterEmail:     email,
		SubmitterName:      "Repeat Visitor",
		ProposedPostalCode: "81004",
	})
	assert.Equal(t, first.SubmitterID, second.SubmitterID)
}

func Test_EditRequestApproval_AtomicOnFailure(t *testing.T) {

	office := createTestOffice(t)
	editService := service.GetEditRequestService()
	officeService := dirservice.GetOfficeService()

	before, err := officeService.GetOffice(office.OfficeID)
	require.NoError(t, err)
	require.Len(t, before.Fields, 1)
	phoneID := before.Fields[0].FieldID

	// The second proposed field overflows the name column, so the apply
	// fails after the first field was already updated inside the
	// transaction.
	req := submitSuggestion(t, office.OfficeID, model.SubmissionRequest{
		ProposedName: "Matara Fort",
		ProposedFields: []model.FieldProposal{
			{Name: "Phone", Value: "041-9999999"},
			{Name: strings.Repeat("X", 300), Value: "unstorable"},
			{Name: "Delivery", Value: "Yes"},
		},
	})

	_, err = editService.Decide(model.DecisionRequest{
		RequestID: req.RequestID,
		Action:    constants.ActionApprove,
	}, "mod-1")
	require.Error(t, err)
	var serverErr *errors2.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors2.CONFLICT_WRITE.Code, serverErr.Code)

	t.Run("Record_is_untouched", func(t *testing.T) {
		after, err := officeService.GetOffice(office.OfficeID)
		require.NoError(t, err)
		assert.Equal(t, office.Name, after.Name)
		require.Len(t, after.Fields, 1)
		assert.Equal(t, phoneID, after.Fields[0].FieldID)
		assert.Equal(t, "041-1111111", after.Fields[0].Value)
	})

	t.Run("Request_stays_open", func(t *testing.T) {
		queue, err := editService.ListOpenRequests()
		require.NoError(t, err)
		found := false
		for _, v := range queue {
			if v.RequestID == req.RequestID {
				found = true
				assert.Equal(t, constants.StatusPending, v.Status)
			}
		}
		assert.True(t, found, "Failed request missing from queue")
	})

	t.Run("In_place_update_keeps_field_identity", func(t *testing.T) {
		clean := submitSuggestion(t, office.OfficeID, model.SubmissionRequest{
			ProposedFields: []model.FieldProposal{{Name: "Phone", Value: "041-2222222"}},
		})
		_, err := editService.Decide(model.DecisionRequest{
			RequestID: clean.RequestID,
			Action:    constants.ActionApprove,
		}, "mod-1")
		require.NoError(t, err)

		final, err := officeService.GetOffice(office.OfficeID)
		require.NoError(t, err)
		require.Len(t, final.Fields, 1)
		assert.Equal(t, phoneID, final.Fields[0].FieldID)
		assert.Equal(t, "041-2222222", final.Fields[0].Value)
	})
}
