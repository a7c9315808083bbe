package assess

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Moodle XML import schema: one multichoice question per item, the correct
// option graded 100 and the rest 0, rich text wrapped in CDATA.

type moodleQuiz struct {
	XMLName   xml.Name         `xml:"quiz"`
	Questions []moodleQuestion `xml:"question"`
}

type moodleQuestion struct {
	Type            string         `xml:"type,attr"`
	Name            moodleName     `xml:"name"`
	QuestionText    moodleRichText `xml:"questiontext"`
	GeneralFeedback moodleRichText `xml:"generalfeedback"`
	DefaultGrade    int            `xml:"defaultgrade"`
	Penalty         float64        `xml:"penalty"`
	Answers         []moodleAnswer `xml:"answer"`
}

type moodleName struct {
	Text string `xml:"text"`
}

type moodleRichText struct {
	Format string     `xml:"format,attr"`
	Text   moodleText `xml:"text"`
}

type moodleText struct {
	Value string `xml:",cdata"`
}

type moodleAnswer struct {
	Fraction string         `xml:"fraction,attr"`
	Text     moodleText     `xml:"text"`
	Feedback moodleRichText `xml:"feedback"`
}

// WriteMoodleXML exports quiz items as a Moodle question bank.
func WriteMoodleXML(topic string, items []QuizItem, path string) error {
	quiz := moodleQuiz{}

	for i, item := range items {
		q := moodleQuestion{
			Type:            "multichoice",
			Name:            moodleName{Text: fmt.Sprintf("%s - Q%d", topic, i+1)},
			QuestionText:    richText(item.Question),
			GeneralFeedback: richText(item.Explanation),
			DefaultGrade:    1,
			Penalty:         0.1,
		}

		for j, opt := range item.Options {
			fraction := "0"
			feedback := "Incorrect."
			if j == item.CorrectIndex {
				fraction = "100"
				feedback = "Correct!"
			}
			q.Answers = append(q.Answers, moodleAnswer{
				Fraction: fraction,
				Text:     moodleText{Value: opt},
				Feedback: richText(feedback),
			})
		}

		quiz.Questions = append(quiz.Questions, q)
	}

	data, err := xml.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal moodle XML: %w", err)
	}

	out := append([]byte(xml.Header), data...)
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write moodle XML: %w", err)
	}
	return nil
}

func richText(s string) moodleRichText {
	return moodleRichText{Format: "html", Text: moodleText{Value: s}}
}
