package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const questionCSV = "question_id,question_text,choice_1,choice_2,choice_3,choice_4,correct_answer\n" +
	"1,富士山の高さは？,3776m,3576m,3676m,3876m,1\n" +
	"2,\"次の読みは？\n「読書」\",どくしょ,とくしょ,よみかき,どくしょう,1\n"

func TestParseQuestions(t *testing.T) {
	questions, errs := ParseQuestions(questionCSV)
	require.Empty(t, errs)
	require.Len(t, questions, 2)

	assert.Equal(t, 1, questions[0].QuestionID)
	assert.Equal(t, "富士山の高さは？", questions[0].Text)
	assert.Equal(t, "3776m", questions[0].Choice1)
	assert.Equal(t, 1, questions[0].CorrectAnswer)

	// quoted multi-line question text survives
	assert.Equal(t, "次の読みは？\n「読書」", questions[1].Text)
}

func TestParseQuestions_HeaderCaseInsensitive(t *testing.T) {
	csv := "Question_ID,QUESTION_TEXT,Choice_1,Choice_2,Choice_3,Choice_4,Correct_Answer\n" +
		"5,Q,a,b,c,d,4\n"
	questions, errs := ParseQuestions(csv)
	require.Empty(t, errs)
	require.Len(t, questions, 1)
	assert.Equal(t, 4, questions[0].CorrectAnswer)
}

func TestParseQuestions_BadHeader(t *testing.T) {
	questions, errs := ParseQuestions("id,text\n1,x\n")
	assert.Nil(t, questions)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Row)
}

func TestParseQuestions_PartialSuccess(t *testing.T) {
	csv := "question_id,question_text,choice_1,choice_2,choice_3,choice_4,correct_answer\n" +
		"1,Q1,a,b,c,d,2\n" +
		"x,Q2,a,b,c,d,1\n" + // non-numeric id
		"3,Q3,a,b,c,d,5\n" + // correct_answer out of range
		"4,Q4,a,b,c,d\n" + // wrong field count
		"5,,a,b,c,d,1\n" + // blank text
		"6,Q6,a,b,c,d,3\n"

	questions, errs := ParseQuestions(csv)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].QuestionID)
	assert.Equal(t, 6, questions[1].QuestionID)

	require.Len(t, errs, 4)
	assert.Equal(t, 3, errs[0].Row, "row numbers are 1-based including the header")
	assert.Equal(t, 4, errs[1].Row)
	assert.Equal(t, 5, errs[2].Row)
	assert.Equal(t, 6, errs[3].Row)
}

func TestParseQuestions_AllRowsBad(t *testing.T) {
	csv := "question_id,question_text,choice_1,choice_2,choice_3,choice_4,correct_answer\n" +
		"x,Q,a,b,c,d,1\n"
	questions, errs := ParseQuestions(csv)
	assert.Empty(t, questions)
	assert.Len(t, errs, 1)
}

func TestParseStudents(t *testing.T) {
	csv := "email,year,class,number,name\n" +
		"taro@example.jp,5,2,14,山田太郎\n" +
		"hanako@example.jp,6,1,3,佐藤花子\n"

	students, errs := ParseStudents(csv)
	require.Empty(t, errs)
	require.Len(t, students, 2)
	assert.Equal(t, "taro@example.jp", students[0].Email)
	assert.Equal(t, 5, students[0].Year)
	assert.Equal(t, "2", students[0].Class)
	assert.Equal(t, 14, students[0].Number)
	assert.Equal(t, "山田太郎", students[0].Name)
}

func TestParseStudents_Errors(t *testing.T) {
	csv := "email,year,class,number,name\n" +
		",5,2,1,No Email\n" +
		"a@example.jp,five,2,1,Bad Year\n" +
		"b@example.jp,5,2,x,Bad Number\n" +
		"c@example.jp,5,2,1,\n"

	students, errs := ParseStudents(csv)
	assert.Empty(t, students)
	require.Len(t, errs, 4)
	for i, e := range errs {
		assert.Equal(t, i+2, e.Row)
		assert.NotEmpty(t, e.Message)
	}
}

func TestParseStudents_EmptyFile(t *testing.T) {
	students, errs := ParseStudents("")
	assert.Nil(t, students)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Row)
}
