// Package prompts собирает промпты интервьюера и проверяющего из персоны конфигурации.
package prompts

import (
	"fmt"
	"strings"

	"citizen-interview/internal/config"
	"citizen-interview/internal/interview"
	"citizen-interview/internal/scoring"
)

// identity строка представления интервьюера
func identity(p config.Persona) string {
	title := p.InterviewTitle
	if title == "" {
		title = "interview"
	}
	if p.Agency == "" {
		return fmt.Sprintf("Identity: You are an interviewer named %s for the %s.\n\n", p.InterviewerName, title)
	}
	return fmt.Sprintf("Identity: You are an interviewer named %s for the %s at the %s.\n\n", p.InterviewerName, title, p.Agency)
}

func style(p config.Persona) string {
	if p.Style == "" {
		return "Be professional, and human natural."
	}
	return p.Style
}

// AskQuestionSystem системный промпт для формулировки очередного вопроса
func AskQuestionSystem(p config.Persona) string {
	var prompt strings.Builder

	prompt.WriteString(identity(p))
	prompt.WriteString("Role:\nConduct the interview.\n\n")

	prompt.WriteString("You will be given:\n")
	prompt.WriteString("- Interviewee's name\n")
	prompt.WriteString("- Current question's index and the total number of questions\n")
	prompt.WriteString("- Current question\n")
	prompt.WriteString("- Previous question, the interviewee's answer to it, the correct answer and whether they got it right (None for the first question)\n\n")

	prompt.WriteString("Rules:\n")
	prompt.WriteString("- If this is the first question (question's index = 0), then\n")
	prompt.WriteString("       - Greet the interviewee, introduce yourself.\n")
	prompt.WriteString("       - Ask the question.\n")
	prompt.WriteString("- If this is the second question onward (question's index > 0), then\n")
	prompt.WriteString("       - Continue the interview without any greeting or welcome.\n")
	prompt.WriteString("       - Give short feedback on the previous question:\n")
	prompt.WriteString("           - If they got it right, say that their answer is correct.\n")
	prompt.WriteString("           - Otherwise, compare their answer with the correct one in ONE or TWO sentences.\n")
	prompt.WriteString("       - Move on and ask the question.\n")
	prompt.WriteString("- You can paraphrase the question for slight challenge, without changing meaning.\n")
	prompt.WriteString(fmt.Sprintf("- %s\n", style(p)))
	prompt.WriteString("- Speak directly to the interviewee.\n")
	prompt.WriteString("- Do NOT add any information beyond what is required.\n")
	prompt.WriteString("- Do NOT add any hint.\n")

	return prompt.String()
}

// AskQuestionState описание текущего хода для рассказчика
func AskQuestionState(q interview.QuestionPrompt) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Interviewee's name: %s\n", q.SubjectName))
	prompt.WriteString(fmt.Sprintf("Current question's index: %d (of %d)\n", q.Index, q.Total))
	prompt.WriteString(fmt.Sprintf("Current question: %s\n", q.Content))

	if q.Previous == nil {
		prompt.WriteString("Previous question: None\n")
		prompt.WriteString("Interviewee's answer to previous question: None\n")
		prompt.WriteString("Correct answer to previous question: None\n")
		prompt.WriteString("Did they get previous answer right?: None\n")
		return prompt.String()
	}

	prev := q.Previous
	prompt.WriteString(fmt.Sprintf("Previous question: %s\n", prev.Question))
	prompt.WriteString(fmt.Sprintf("Interviewee's answer to previous question: %s\n", orNone(prev.Answer)))
	prompt.WriteString(fmt.Sprintf("Correct answer to previous question: %s\n", prev.Reference))
	prompt.WriteString(fmt.Sprintf("Did they get previous answer right?: %s\n", yesNo(prev.Correct)))
	if prev.Feedback != "" {
		prompt.WriteString(fmt.Sprintf("Grader's note: %s\n", prev.Feedback))
	}

	return prompt.String()
}

// ConcludeSystem системный промпт для заключительного слова
func ConcludeSystem(p config.Persona) string {
	var prompt strings.Builder

	prompt.WriteString(identity(p))
	prompt.WriteString("Role:\nAnnounce the interview result and conclude.\n\n")

	prompt.WriteString("You will be given:\n")
	prompt.WriteString("- Interviewee's name\n")
	prompt.WriteString("- Do they pass interview?\n")
	prompt.WriteString("- Number of correct answers and questions asked\n\n")

	prompt.WriteString("Rules:\n")
	prompt.WriteString("- Tell the interviewee how many questions they answered correctly and if they passed the interview or not.\n")
	prompt.WriteString("- If the interviewee passed, then\n")
	prompt.WriteString("       - Congratulate them on passing.\n")
	prompt.WriteString("       - Tell them to wait for schedule of ceremony.\n")
	prompt.WriteString("- If the interviewee failed, then\n")
	prompt.WriteString("       - Encourage them to do better next time.\n")
	prompt.WriteString("       - Be motivating, and empathetic.\n")
	prompt.WriteString("- End with a short farewell.\n")
	prompt.WriteString(fmt.Sprintf("- Be concise. %s\n", style(p)))
	prompt.WriteString("- Speak directly to the interviewee.\n")
	prompt.WriteString("- Do NOT ask any questions.\n")

	return prompt.String()
}

// ConcludeState итоги интервью для заключительного слова
func ConcludeState(c interview.ConclusionPrompt) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Interviewee's name: %s\n", c.SubjectName))
	prompt.WriteString(fmt.Sprintf("Do they pass interview?: %s\n", yesNo(c.Outcome == scoring.Passed)))
	prompt.WriteString(fmt.Sprintf("Number of correct answers: %d (out of %d asked, %d planned)\n", c.CorrectCount, c.Asked, c.Total))

	return prompt.String()
}

// EvaluateSystem системный промпт проверяющего. format: yes_no или json.
func EvaluateSystem(p config.Persona, format string) string {
	var prompt strings.Builder

	title := p.InterviewTitle
	if title == "" {
		title = "interview"
	}
	prompt.WriteString(fmt.Sprintf("Identity: You are a strict grader for a %s.\n\n", title))

	prompt.WriteString("You will be given:\n")
	prompt.WriteString("- Question\n")
	prompt.WriteString("- Interviewee's answer\n")
	prompt.WriteString("- Correct answer\n\n")

	prompt.WriteString("Rules:\n")
	prompt.WriteString("- Compare the interviewee's answer to the correct answer.\n")
	prompt.WriteString("- Accept paraphrases and synonyms.\n")
	prompt.WriteString("- Reject answers that are factually incorrect or incomplete.\n")

	if format == config.JudgeFormatJSON {
		prompt.WriteString("- Keep feedback to one short sentence.\n\n")
		prompt.WriteString("Output format:\n")
		prompt.WriteString(`Respond with ONLY a JSON object: {"correct": true|false, "feedback": "<one sentence>"}`)
		prompt.WriteString("\nDo NOT wrap it in markdown.\n")
		return prompt.String()
	}

	prompt.WriteString("- Do NOT explain your reasoning.\n")
	prompt.WriteString("- Do NOT add any extra text.\n\n")
	prompt.WriteString("Output format:\n")
	prompt.WriteString("Respond with exactly one word: YES or NO\n")

	return prompt.String()
}

// EvaluateState вопрос, ответ и эталон для проверяющего
func EvaluateState(question, answer, reference string) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Question: %s\n", question))
	prompt.WriteString(fmt.Sprintf("Interviewee's answer: %s\n", orNone(answer)))
	prompt.WriteString(fmt.Sprintf("Correct answer: %s\n", reference))

	return prompt.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
