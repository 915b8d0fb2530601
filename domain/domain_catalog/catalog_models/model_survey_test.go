package catalog_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurveyAnswers_UnmarshalJSON(t *testing.T) {
	var answers SurveyAnswers
	err := json.Unmarshal([]byte(`[null, ["Classic & Timeless", "Bold & Statement"], "Gold", null, "Under 50,000 INR"]`), &answers)
	require.NoError(t, err)

	assert.Len(t, answers, 3)
	_, ok := answers.Answer(QuestionIndexOccasion)
	assert.False(t, ok)

	style, ok := answers.Answer(QuestionIndexStyle)
	require.True(t, ok)
	assert.True(t, style.Multiple)
	assert.Equal(t, map[string]struct{}{"Classic & Timeless": {}, "Bold & Statement": {}}, style.Set())

	metal, ok := answers.Answer(QuestionIndexMetal)
	require.True(t, ok)
	v, ok := metal.Single()
	assert.True(t, ok)
	assert.Equal(t, "Gold", v)
}

func TestSurveyAnswers_UnmarshalJSONErrors(t *testing.T) {
	var answers SurveyAnswers
	assert.Error(t, json.Unmarshal([]byte(`{"1": "Gold"}`), &answers))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &answers))
	assert.Error(t, json.Unmarshal([]byte(`[[1, 2]]`), &answers))

	require.NoError(t, json.Unmarshal([]byte(`null`), &answers))
	assert.Nil(t, answers)
}

func TestSurveyAnswers_MarshalJSON(t *testing.T) {
	answers := SurveyAnswers{
		QuestionIndexStyle:  MultipleAnswer("Classic & Timeless"),
		QuestionIndexBudget: SingleAnswer(BudgetUnder50K),
	}

	data, err := json.Marshal(answers)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, ["Classic & Timeless"], null, null, "Under 50,000 INR"]`, string(data))

	data, err = json.Marshal(SurveyAnswers{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestSurveyAnswer_SingleAndSet(t *testing.T) {
	single := SingleAnswer("Rose Gold")
	v, ok := single.Single()
	assert.True(t, ok)
	assert.Equal(t, "Rose Gold", v)
	assert.Equal(t, map[string]struct{}{"Rose Gold": {}}, single.Set())

	_, ok = MultipleAnswer("Rose Gold").Single()
	assert.False(t, ok)
	_, ok = SurveyAnswer{}.Single()
	assert.False(t, ok)
	assert.Empty(t, SurveyAnswer{}.Set())
}

func TestSurveyAnswers_CloneIsDeep(t *testing.T) {
	answers := SurveyAnswers{QuestionIndexStyle: MultipleAnswer("Classic")}
	clone := answers.Clone()
	clone[QuestionIndexStyle].Values[0] = "Bold"
	clone[QuestionIndexMetal] = SingleAnswer("Gold")

	assert.Equal(t, []string{"Classic"}, answers[QuestionIndexStyle].Values)
	assert.Len(t, answers, 1)
	assert.Nil(t, SurveyAnswers(nil).Clone())
}
