package extraction

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func newTestExtractor() *Extractor {
	return New(nil, WithClock(fixedClock))
}

func TestMatchSkills_WordBoundaries(t *testing.T) {
	t.Parallel()

	e := New(NewLexicon([]string{"java"}, nil, nil))
	assert.Empty(t, e.MatchSkills("javascript developer"))
	assert.Equal(t, []string{"Java"}, e.MatchSkills("Java, JavaScript"))

	d := newTestExtractor()
	assert.Equal(t, []string{"node.js"}, d.MatchSkills("node.js and nodejs"))
	assert.Equal(t, []string{"C++", "C#", ".NET"}, d.MatchSkills("C++, C# and .NET"))
	assert.Equal(t, []string{"PYTHON"}, d.MatchSkills("PYTHON and python"))
}

func TestMatchSkills_Compounds(t *testing.T) {
	t.Parallel()

	e := New(NewLexicon([]string{"sql server", "sql"}, nil, nil))
	for _, text := range []string{"sql-server experience", "sql_server experience", "SQLServer experience"} {
		assert.Equal(t, []string{"sql server"}, e.MatchSkills(text), text)
	}
	assert.Equal(t, []string{"SQL Server", "SQL"}, e.MatchSkills("SQL Server and plain SQL"))
}

func TestMatchSkills_LongestFirst(t *testing.T) {
	t.Parallel()

	e := New(NewLexicon([]string{"react", "react native"}, nil, nil))
	assert.Equal(t, []string{"React Native"}, e.MatchSkills("React Native"))
	assert.Equal(t, []string{"React Native", "React"}, e.MatchSkills("React Native and React"))
}

func TestExtractSkills_Section(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"",
		"Technical Skills",
		"Python, Django, SQL Server, Leadership, Team Mentoring",
		"Programming Languages: Go, Java",
		"",
		"Experience",
		"Worked with JavaScript and Kubernetes at Acme.",
	}, "\n")

	got := newTestExtractor().ExtractSkills(text)
	assert.Equal(t, []string{"Python", "Django", "SQL Server", "Go", "Java"}, got.Primary)
	assert.Equal(t, []string{"Leadership", "Team Mentoring"}, got.Secondary)
	assert.Equal(t, append(append([]string{}, got.Primary...), got.Secondary...), got.All)
}

func TestExtractSkills_Fallbacks(t *testing.T) {
	t.Parallel()

	e := newTestExtractor()

	got := e.ExtractSkills("Built services in Golang and Python on AWS.")
	assert.Equal(t, []string{"Golang", "Python", "AWS"}, got.Primary)
	assert.Empty(t, got.Secondary)

	got = e.ExtractSkills("Skills: Communication, Negotiation\n\nExperience\nUsed Python daily.")
	assert.Equal(t, []string{"Python"}, got.Primary)
	assert.Equal(t, []string{"Communication", "Negotiation"}, got.Secondary)

	got = e.ExtractSkills("   ")
	assert.Equal(t, emptySkillSet(), got)
}

func TestExtractExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "plus years of experience", text: "Software engineer with 7+ years of experience in fintech.", want: 7},
		{name: "over n years", text: "Over 4 years building APIs", want: 4},
		{name: "experience colon", text: "Experience: 3 years", want: 3},
		{name: "years in the industry", text: "12 years in the industry", want: 12},
		{name: "decimal claim", text: "2.5 years of experience", want: 2.5},
		{name: "implausible claim ignored", text: "99 years of experience", want: 0},
		{
			name: "date ranges in experience section",
			text: "Professional Experience\nAcme Corp Jan 2018 - Mar 2020\nGlobex Apr 2020 - Present\n\nEducation\nB.Tech 2014",
			want: 7,
		},
		{name: "single year to present", text: "Experience\nFreelance 2021 - Present", want: 4},
		{name: "future years capped", text: "Experience\n2019 - 2030", want: 6},
		{name: "single year only", text: "Experience\nGraduated 2019", want: 0},
		{name: "empty", text: "", want: 0},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.ExtractExperience(tt.text))
		})
	}
}

func TestExtractDomains(t *testing.T) {
	t.Parallel()

	e := newTestExtractor()

	assert.Equal(t,
		[]string{InformationTechnology, "Banking", "Insurance"},
		e.ExtractDomains("Worked for a Banking and Insurance client using Python."),
	)
	assert.Equal(t, []string{"Retail"}, e.ExtractDomains("Managed retail stores."))
	assert.Equal(t,
		[]string{InformationTechnology, "Healthcare"},
		e.ExtractDomains("Information Technology consultant for Healthcare"),
	)
	assert.Empty(t, e.ExtractDomains(""))

	custom := New(NewLexicon(nil, []string{"Logistics"}, []string{"sap"}))
	assert.Equal(t, []string{InformationTechnology, "Logistics"}, custom.ExtractDomains("SAP rollout for a logistics firm"))
	assert.Empty(t, custom.ExtractDomains("shipping and freight"))

	assert.Equal(t, []string{InformationTechnology}, e.ExtractDomains("Built dashboards in ReactJS backed by sqlserver"))
}

func TestExtractEducation(t *testing.T) {
	t.Parallel()

	e := newTestExtractor()

	got := e.ExtractEducation("Education\nB.Tech in Computer Science, 2016\nM.S. in Data Science\n")
	assert.Equal(t, DegreeMasters, got.Highest)
	assert.Contains(t, got.Section, "B.Tech in Computer Science")

	assert.Equal(t, DegreePhD, e.ExtractEducation("PhD in Physics, MBA").Highest)
	assert.Equal(t, DegreeBachelors, e.ExtractEducation("Bachelor of Engineering").Highest)
	assert.Equal(t, DegreeDiploma, e.ExtractEducation("Diploma in Mechanical Engineering").Highest)
	assert.Empty(t, e.ExtractEducation("Be a team player and help me grow").Highest)
	assert.Empty(t, e.ExtractEducation("Captain: M.S Dhoni\nCoach: B.S Rao").Highest)
	assert.Equal(t, DegreeBachelors, e.ExtractEducation("B.E. in Electronics").Highest)
	assert.Equal(t, DegreeMasters, e.ExtractEducation("M.S. from Stanford").Highest)
	assert.Equal(t, Education{}, e.ExtractEducation(""))
}

func TestContactFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jane.doe@example.com", ExtractEmail("Reach me at jane.doe@example.com or by phone"))
	assert.Empty(t, ExtractEmail("no address here"))
	assert.Equal(t, "+1 415-555-0134", ExtractPhone("Phone: +1 415-555-0134"))
	assert.Equal(t, "Pune, India", ExtractLocation("Location: Pune, India\nEmail: x@y.com"))
	assert.Equal(t, "Acme Corp", ExtractCurrentCompany("Company: Acme Corp\n"))
	assert.Equal(t, "Senior Engineer", ExtractCurrentDesignation("Designation: Senior Engineer\n"))

	history := "Experience\nSenior Backend Developer at Globex Solutions\n2019 - Present"
	assert.Equal(t, "Senior Backend Developer", ExtractCurrentDesignation(history))
	assert.Equal(t, "Globex Solutions", ExtractCurrentCompany(history))
}

func TestExtractName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "all caps first line", text: "JANE DOE\nSoftware Engineer", want: "JANE DOE"},
		{name: "skips document title", text: "Curriculum Vitae\nDaniel Mindlin\n6056 Sunnycrest Drive", want: "Daniel Mindlin"},
		{name: "name containing in", text: "Kevin Smith\nkevin@example.com", want: "Kevin Smith"},
		{name: "skips contact lines", text: "kevin@example.com\n+1 415-555-0134\nKevin Smith", want: "Kevin Smith"},
		{name: "no name", text: "Education\nB.S. in Statistics", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}

func TestExtractProfile(t *testing.T) {
	t.Parallel()

	resume := strings.Join([]string{
		"Asha Verma",
		"asha.verma@example.com | +91 98765 43210",
		"Location: Bengaluru, India",
		"",
		"Summary",
		"Backend engineer with 6+ years of experience in Banking platforms.",
		"",
		"Skills",
		"Python, Django, PostgreSQL, Stakeholder Management",
		"",
		"Experience",
		"Senior Software Engineer at Finbank Technologies",
		"2019 - Present",
		"",
		"Education",
		"Bachelor of Technology, 2015",
	}, "\n")

	p := newTestExtractor().ExtractProfile(resume)
	assert.Equal(t, "Asha Verma", p.Name)
	assert.Equal(t, "asha.verma@example.com", p.Email)
	assert.Equal(t, "Bengaluru, India", p.Location)
	assert.Equal(t, 6.0, p.TotalExperience)
	assert.Equal(t, []string{"Python", "Django", "PostgreSQL"}, p.Skills.Primary)
	assert.Equal(t, []string{"Stakeholder Management"}, p.Skills.Secondary)
	assert.Equal(t, []string{InformationTechnology, "Banking"}, p.Domains)
	assert.Equal(t, DegreeBachelors, p.Education.Highest)
	assert.Equal(t, "Senior Software Engineer", p.CurrentDesignation)
	assert.Equal(t, "Finbank Technologies", p.CurrentCompany)
}

func TestValidateText(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, ValidateText("too short"), ErrTextTooShort)
	require.ErrorIs(t, ValidateText("   "+strings.Repeat("x", 99)+"   "), ErrTextTooShort)
	require.NoError(t, ValidateText(strings.Repeat("x", MinResumeTextLength)))
}

func TestLexicon(t *testing.T) {
	t.Parallel()

	l := DefaultLexicon()
	assert.Same(t, l, DefaultLexicon())
	assert.True(t, l.IsSkill(" Node.JS "))
	assert.False(t, l.IsSkill("leadership"))
	assert.Contains(t, l.Domains(), "Banking")

	assert.Same(t, l, New(nil).Lexicon())
}
