package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/api"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/runtime/terminal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPVCmd_JSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewNPVCmd(export.NewReporter(&buf))
	cmd.SetArgs([]string{"--investment", "1000", "--rate", "0", "--flows", "600,600", "--json"})

	require.NoError(t, cmd.Execute())

	var resp api.NPVResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 200.0, resp.NPV)
	assert.True(t, resp.IsViable)
	require.NotNil(t, resp.BreakEvenPeriod)
	assert.Equal(t, 2, *resp.BreakEvenPeriod)
}

func TestNPVCmd_CountryDefaultRate(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewNPVCmd(export.NewReporter(&buf))
	cmd.SetArgs([]string{"--investment", "1000", "--country", "Zambia", "--flows", "1100", "--json"})

	require.NoError(t, cmd.Execute())

	var resp api.NPVResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.InDelta(t, -1000+1100/1.10, resp.NPV, 1e-9)
}

func TestNPVCmd_RejectsUnknownPeriod(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewNPVCmd(export.NewReporter(&buf))
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--investment", "1000", "--flows", "600", "--period", "decades"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decades")
}

func TestRiskCmd_RequiresAFactor(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewRiskCmd(export.NewReporter(&buf))
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one risk factor")
}

func TestRiskCmd_JSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewRiskCmd(export.NewReporter(&buf))
	cmd.SetArgs([]string{"--budget-variance", "80", "--json"})

	require.NoError(t, cmd.Execute())

	var resp api.RiskResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 80, resp.RiskScore)
	assert.Equal(t, "High Risk", resp.RiskLevel)
}

func TestWastageCmd_RendersTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewWastageCmd(export.NewReporter(&buf))
	cmd.SetArgs([]string{"--allocated", "100", "--used", "75", "--cost-per-unit", "1000"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Resource Wastage")
	assert.Contains(t, out, "concerning")
	assert.Contains(t, out, "K25000.00")
}

func TestHealthCmd_JSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewHealthCmd(export.NewReporter(&buf))
	cmd.SetArgs([]string{
		"--project", "solar-farm",
		"--npv", "120000",
		"--risk-score", "20",
		"--status", "In progress",
		"--priority", "High",
		"--json",
	})

	require.NoError(t, cmd.Execute())

	var resp api.ProjectHealth
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "solar-farm", resp.Project)
	assert.Equal(t, 100, resp.HealthScore)
	assert.Equal(t, "excellent", resp.Status)
}
