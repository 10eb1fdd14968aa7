package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadinessReport_Failed(t *testing.T) {
	report := ReadinessReport{Checks: []CheckResult{
		{Name: "backend", Status: CheckStatusFailed},
		{Name: "sms", Status: CheckStatusOK},
		{Name: "database", Status: CheckStatusSkipped},
		{Name: "asset:axios", Status: CheckStatusFailed},
	}}

	assert.Equal(t, []string{"backend", "asset:axios"}, report.Failed())
	assert.Nil(t, ReadinessReport{}.Failed())
}
