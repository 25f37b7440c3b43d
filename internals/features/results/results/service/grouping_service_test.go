package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillsmap_backend/internals/constants"
	dto "skillsmap_backend/internals/features/results/results/dto"
)

type fixture struct {
	roleGeneral uuid.UUID
	roleDevops  uuid.UUID
	userA       uuid.UUID // General + DevOps
	userB       uuid.UUID // General saja
	optExpert   uuid.UUID // ordinal 0
	optNovice   uuid.UUID // ordinal 3
	users       dto.UserMap
	options     dto.AnswerOptionMap
}

func newFixture() fixture {
	f := fixture{
		roleGeneral: uuid.New(),
		roleDevops:  uuid.New(),
		userA:       uuid.New(),
		userB:       uuid.New(),
		optExpert:   uuid.New(),
		optNovice:   uuid.New(),
	}
	f.users = dto.UserMap{
		f.userA: {
			Name:                     "Alice",
			CommunicationPreferences: []string{"email"},
			RoleIDs:                  []uuid.UUID{f.roleGeneral, f.roleDevops},
			RoleNames:                []string{"General", "DevOps"},
		},
		f.userB: {
			Name:      "Bob",
			RoleIDs:   []uuid.UUID{f.roleGeneral},
			RoleNames: []string{"General"},
		},
	}
	f.options = dto.AnswerOptionMap{
		f.optExpert: 0,
		f.optNovice: 3,
	}
	return f
}

func TestBuildTables_RoleMembershipFilter(t *testing.T) {
	f := newFixture()

	// pertanyaan ditag dua role; Bob cuma terdaftar di General
	rows := []dto.AnswerRow{{
		UserID:          f.userB,
		QuestionID:      uuid.New(),
		AnswerOptionID:  f.optExpert,
		QuestionText:    "Kubernetes",
		QuestionRoleIDs: []uuid.UUID{f.roleGeneral, f.roleDevops},
	}}

	res := BuildTables(rows, f.users, f.options)

	// jawaban Bob TIDAK boleh bocor ke DevOps
	require.Contains(t, res.Detail, f.roleGeneral)
	assert.NotContains(t, res.Detail, f.roleDevops)
	assert.NotContains(t, res.Aggregate, f.roleDevops)

	entries := res.Detail[f.roleGeneral]["Kubernetes"]
	require.Len(t, entries, 1)
	assert.Equal(t, "Bob", entries[0].Name)
	assert.Equal(t, "0", entries[0].Answer)
}

func TestBuildTables_AggregateCounts(t *testing.T) {
	f := newFixture()
	rows := []dto.AnswerRow{
		{UserID: f.userA, QuestionID: uuid.New(), AnswerOptionID: f.optExpert, QuestionText: "Go", QuestionRoleIDs: []uuid.UUID{f.roleDevops}},
		{UserID: f.userA, QuestionID: uuid.New(), AnswerOptionID: f.optExpert, QuestionText: "CI/CD", QuestionRoleIDs: []uuid.UUID{f.roleDevops}},
		{UserID: f.userA, QuestionID: uuid.New(), AnswerOptionID: f.optNovice, QuestionText: "Terraform", QuestionRoleIDs: []uuid.UUID{f.roleDevops}},
	}

	res := BuildTables(rows, f.users, f.options)

	agg := res.Aggregate[f.roleDevops][f.userA]
	require.NotNil(t, agg)
	assert.Equal(t, [4]int{2, 0, 0, 1}, agg.Counts)
	assert.Equal(t, "Alice", agg.Name)
}

func TestBuildTables_UnknownLookupsDegradeToSentinels(t *testing.T) {
	f := newFixture()
	unknownUser := uuid.New()
	unknownOption := uuid.New()

	rows := []dto.AnswerRow{{
		UserID:          unknownUser,
		QuestionID:      uuid.New(),
		AnswerOptionID:  unknownOption,
		QuestionText:    "Kafka",
		QuestionRoleIDs: []uuid.UUID{f.roleGeneral},
	}}

	res := BuildTables(rows, f.users, f.options)

	entries := res.Detail[f.roleGeneral]["Kafka"]
	require.Len(t, entries, 1)
	assert.Equal(t, constants.SentinelUnknownUser, entries[0].Name)
	assert.Equal(t, constants.SentinelUnknownAnswer, entries[0].Answer)
	assert.Equal(t, []string{constants.SentinelDoNotContact}, entries[0].CommunicationPreferences)

	// option tak dikenal tidak dihitung ke bucket manapun
	agg := res.Aggregate[f.roleGeneral][unknownUser]
	require.NotNil(t, agg)
	assert.Equal(t, [4]int{0, 0, 0, 0}, agg.Counts)
}

func TestBuildTables_BlankPreferencesGetSentinel(t *testing.T) {
	f := newFixture()
	userC := uuid.New()
	f.users[userC] = dto.UserInfo{
		Name:                     "Cindy",
		CommunicationPreferences: []string{"", "  "},
		RoleIDs:                  []uuid.UUID{f.roleGeneral},
		RoleNames:                []string{"General"},
	}

	rows := []dto.AnswerRow{{
		UserID:          userC,
		QuestionID:      uuid.New(),
		AnswerOptionID:  f.optExpert,
		QuestionText:    "SQL",
		QuestionRoleIDs: []uuid.UUID{f.roleGeneral},
	}}

	res := BuildTables(rows, f.users, f.options)

	entries := res.Detail[f.roleGeneral]["SQL"]
	require.Len(t, entries, 1)
	assert.Equal(t, []string{constants.SentinelDoNotContact}, entries[0].CommunicationPreferences)
}
