package catalog_models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// 问卷题型
const (
	QuestionTypeSingle   = "single"
	QuestionTypeMultiple = "multiple"
)

// 推荐引擎读取的题目下标（从0开始）
const (
	QuestionIndexOccasion = 0
	QuestionIndexStyle    = 1
	QuestionIndexMetal    = 2
	QuestionIndexGemstone = 3
	QuestionIndexBudget   = 4
)

// 预算区间标签，与问卷第5题选项一致
const (
	BudgetUnder50K     = "Under 50,000 INR"
	Budget50KTo150K    = "50,000 - 150,000 INR"
	Budget150KTo500K   = "150,000 - 500,000 INR"
	Budget500KAndAbove = "500,000+ INR"
)

type SurveyQuestion struct {
	ID       int      `bson:"_id" json:"id" yaml:"id"`
	Question string   `bson:"question" json:"question" yaml:"question"`
	Type     string   `bson:"type" json:"type" yaml:"type"` // single / multiple
	Options  []string `bson:"options" json:"options" yaml:"options"`
}

func (q SurveyQuestion) EntityID() int { return q.ID }

// SurveyAnswer 单题答案：单选为一个选项，多选为选项集合
// JSON 中单选为字符串，多选为字符串数组
type SurveyAnswer struct {
	Values   []string
	Multiple bool
}

func SingleAnswer(value string) SurveyAnswer {
	return SurveyAnswer{Values: []string{value}}
}

func MultipleAnswer(values ...string) SurveyAnswer {
	return SurveyAnswer{Values: slices.Clone(values), Multiple: true}
}

// Single 返回单选值；多选答案或空答案返回 ok=false
func (a SurveyAnswer) Single() (string, bool) {
	if a.Multiple || len(a.Values) != 1 {
		return "", false
	}
	return a.Values[0], true
}

// Set 以集合形式返回答案，单选答案视为单元素集合
func (a SurveyAnswer) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(a.Values))
	for _, v := range a.Values {
		set[v] = struct{}{}
	}
	return set
}

func (a SurveyAnswer) MarshalJSON() ([]byte, error) {
	if a.Multiple {
		if a.Values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Values)
	}
	if v, ok := a.Single(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}

func (a *SurveyAnswer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = SurveyAnswer{}
		return nil
	case len(data) > 0 && data[0] == '[':
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("invalid multiple answer: %w", err)
		}
		*a = MultipleAnswer(values...)
		return nil
	default:
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("invalid single answer: %w", err)
		}
		*a = SingleAnswer(value)
		return nil
	}
}

// SurveyAnswers 题目下标 -> 答案，缺失的题目视为未作答
// JSON 形式为按下标排列的数组，未作答位置为 null
type SurveyAnswers map[int]SurveyAnswer

// Answer 获取指定题目的答案
func (s SurveyAnswers) Answer(index int) (SurveyAnswer, bool) {
	a, ok := s[index]
	return a, ok
}

// Clone 复制答案集合
func (s SurveyAnswers) Clone() SurveyAnswers {
	if s == nil {
		return nil
	}
	out := make(SurveyAnswers, len(s))
	for k, v := range s {
		out[k] = SurveyAnswer{Values: slices.Clone(v.Values), Multiple: v.Multiple}
	}
	return out
}

func (s SurveyAnswers) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("[]"), nil
	}
	indexes := make([]int, 0, len(s))
	for k := range s {
		if k >= 0 {
			indexes = append(indexes, k)
		}
	}
	sort.Ints(indexes)
	if len(indexes) == 0 {
		return []byte("[]"), nil
	}
	out := make([]*SurveyAnswer, indexes[len(indexes)-1]+1)
	for _, k := range indexes {
		a := s[k]
		out[k] = &a
	}
	return json.Marshal(out)
}

func (s *SurveyAnswers) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("answers must be an array: %w", err)
	}
	answers := make(SurveyAnswers, len(raw))
	for i, item := range raw {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			continue
		}
		var a SurveyAnswer
		if err := a.UnmarshalJSON(item); err != nil {
			return fmt.Errorf("answer %d: %w", i, err)
		}
		answers[i] = a
	}
	*s = answers
	return nil
}
