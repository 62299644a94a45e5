package domain_test

import (
	"testing"

	"github.com/sitelint/sitelint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuditResult_ScoreFloor(t *testing.T) {
	res := domain.NewAuditResult()
	assert.Equal(t, 100, res.Score)

	for i := 0; i < 15; i++ {
		res.AddError(domain.Issue{Code: domain.CodeDeadInternal, Message: "dead", Penalty: 10})
	}

	assert.Equal(t, 0, res.Score, "score should floor at zero")
	assert.Len(t, res.Errors, 15, "every occurrence should still be recorded")
}

func TestAuditResult_PenaltiesAccumulate(t *testing.T) {
	res := domain.NewAuditResult()

	res.AddError(domain.Issue{Code: domain.CodeMissingH1, Penalty: 5})
	res.AddWarning(domain.Issue{Code: domain.CodeMissingSchema, Penalty: 2})
	res.AddWarning(domain.Issue{Code: domain.CodeMultipleH1})

	assert.Equal(t, 93, res.Score)
	assert.Len(t, res.Errors, 1)
	assert.Len(t, res.Warnings, 2)
}

func TestAuditResult_InfosNeverCharge(t *testing.T) {
	res := domain.NewAuditResult()

	// Penalty on an info must be discarded, not applied.
	res.AddInfo(domain.Issue{Code: domain.CodeDegradedConfig, Penalty: 50})

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 0, res.Infos[0].Penalty)
}

func TestAuditResult_SeveritiesAssigned(t *testing.T) {
	res := domain.NewAuditResult()
	res.AddError(domain.Issue{Code: domain.CodeDeadInternal})
	res.AddWarning(domain.Issue{Code: domain.CodeOrphanPage})
	res.AddInfo(domain.Issue{Code: domain.CodeDegradedConfig})

	assert.Equal(t, domain.SeverityError, res.Errors[0].Severity)
	assert.Equal(t, domain.SeverityWarning, res.Warnings[0].Severity)
	assert.Equal(t, domain.SeverityInfo, res.Infos[0].Severity)
}

func TestAuditResult_HasIssue(t *testing.T) {
	res := domain.NewAuditResult()
	res.AddError(domain.Issue{Code: domain.CodeDeadInternal})
	res.AddWarning(domain.Issue{Code: domain.CodeOrphanPage})

	assert.True(t, res.HasIssue(domain.CodeDeadInternal))
	assert.True(t, res.HasIssue(domain.CodeOrphanPage))
	assert.False(t, res.HasIssue(domain.CodeDeadExternal))
}

func TestGradeFor(t *testing.T) {
	assert.Equal(t, "A+", domain.GradeFor(95))
	assert.Equal(t, "A", domain.GradeFor(85))
	assert.Equal(t, "B", domain.GradeFor(70))
	assert.Equal(t, "C", domain.GradeFor(60))
	assert.Equal(t, "D", domain.GradeFor(50))
	assert.Equal(t, "F", domain.GradeFor(10))
}

func TestBadgeColor(t *testing.T) {
	assert.Equal(t, "brightgreen", domain.BadgeColor(100))
	assert.Equal(t, "critical", domain.BadgeColor(0))
}
