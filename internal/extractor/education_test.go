package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEducationHighestDegreeHierarchy(t *testing.T) {
	// 学士(3) 高于 大专(2)
	edu := ExtractEducation("Bachelor of Science in Physics and a Diploma in Welding")
	assert.Equal(t, "Bachelor", edu.HighestDegree, "学士学历应高于大专")
	assert.Contains(t, edu.Degrees, "Bachelor")
	assert.Contains(t, edu.Degrees, "Diploma")
}

func TestExtractEducationMasterBeatsBachelor(t *testing.T) {
	edu := ExtractEducation("Bachelor of Engineering followed by Master of Science")
	assert.Equal(t, "Master", edu.HighestDegree, "硕士学历应高于学士")
}

func TestExtractEducationDoctorate(t *testing.T) {
	edu := ExtractEducation("PhD in Physics, previously Master of Arts")
	assert.Equal(t, "Phd", edu.HighestDegree, "博士学历应高于硕士")
}

func TestExtractEducationUnknownWhenNoDegree(t *testing.T) {
	edu := ExtractEducation("self taught tinkerer, no degrees listed")
	assert.Equal(t, "Unknown", edu.HighestDegree, "没有任何学位匹配时应返回Unknown")
	assert.Empty(t, edu.Degrees)
}

func TestExtractEducationGraduationYears(t *testing.T) {
	// 合理区间(1990-2030)内的年份，去重后降序
	edu := ExtractEducation("Graduated 2015, exchange year 2019, born 1985, projected 2031, again 2019")
	assert.Equal(t, []int{2019, 2015}, edu.GraduationYears,
		"应过滤区间外年份, 去重后按降序排列")
}

func TestExtractEducationGraduationYearsCap(t *testing.T) {
	edu := ExtractEducation("timeline 1995 then 2000 then 2005 then 2010")
	assert.Equal(t, []int{2010, 2005, 2000}, edu.GraduationYears, "毕业年份最多保留3个")
}

func TestExtractEducationInstitutions(t *testing.T) {
	edu := ExtractEducation("Studied at University of Toronto, graduating with honors")
	assert.Contains(t, edu.Institutions, "University of Toronto", "应识别University of X形态的院校")
}

func TestExtractEducationInstitutionSuffixForm(t *testing.T) {
	edu := ExtractEducation("Alumnus of Stanford University, class president")
	found := false
	for _, inst := range edu.Institutions {
		if containsAny(inst, []string{"Stanford"}) {
			found = true
		}
	}
	assert.True(t, found, "应识别X University形态的院校")
}

func TestExtractEducationAcronymInstitution(t *testing.T) {
	edu := ExtractEducation("degree awarded by IIT Bombay in record time")
	found := false
	for _, inst := range edu.Institutions {
		if containsAny(inst, []string{"IIT"}) {
			found = true
		}
	}
	assert.True(t, found, "应识别IIT等已知缩写开头的院校")
}
