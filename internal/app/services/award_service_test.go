package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
)

func TestAwardFromRequestTruncatesDate(t *testing.T) {
	award := awardFromRequest(&dto.AwardRequest{
		Title:        "Young Scientist Award",
		Organization: "INSA",
		AwardDate:    "2019-08-15T10:00:00+05:30",
	})
	assert.Equal(t, "2019-08-15", award.AwardDate)
	assert.Equal(t, "Young Scientist Award", award.Title)
}
