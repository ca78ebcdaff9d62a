package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
)

func TestValidatePatentDates(t *testing.T) {
	ok := &models.Patent{FilingDate: "2021-03-01", PublicationDate: "", IssueDate: "2023-11-20"}
	require.NoError(t, validatePatentDates(ok))

	bad := &models.Patent{FilingDate: "03/01/2021"}
	err := validatePatentDates(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "filing_date")
}

func TestPatentFromRequestTruncatesDates(t *testing.T) {
	p := patentFromRequest(&dto.PatentRequest{
		Title:      "Adaptive Antenna Array",
		FilingDate: "2021-03-01T00:00:00Z",
		Status:     "granted",
	})
	assert.Equal(t, "2021-03-01", p.FilingDate)
	require.NoError(t, validatePatentDates(p))
}
