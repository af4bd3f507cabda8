package prompts

import (
	"fmt"
	"strings"
)

const (
	StyleConcise      = "concise"
	StyleDetailed     = "detailed"
	StyleBulletPoints = "bullet_points"
	StyleExecutive    = "executive"
	StyleAcademic     = "academic"
)

// Summary templates take language, max words and text, in that order.
var summaryTemplates = map[string]string{
	StyleConcise: `Create a concise summary of the following text in %s.
Focus on the main points and key insights. Keep it brief but informative.
Maximum length: %d words.

Text to summarize:
%s`,
	StyleDetailed: `Create a detailed summary of the following text in %s.
Include important details, examples, and supporting information.
Maintain the logical flow and structure of the original content.
Maximum length: %d words.

Text to summarize:
%s`,
	StyleBulletPoints: `Create a bullet-point summary of the following text in %s.
Organize the main points and key insights into clear, concise bullet points.
Use proper formatting with • or - for bullets.
Maximum length: %d words.

Text to summarize:
%s`,
	StyleExecutive: `Create an executive summary of the following text in %s.
Focus on high-level insights, conclusions, and actionable recommendations.
Write in a professional, business-oriented tone.
Maximum length: %d words.

Text to summarize:
%s`,
	StyleAcademic: `Create an academic summary of the following text in %s.
Include methodology, findings, conclusions, and implications.
Use formal academic language and structure.
Maximum length: %d words.

Text to summarize:
%s`,
}

var styleDescriptions = map[string]string{
	StyleConcise:      "Brief overview of the main points",
	StyleDetailed:     "In-depth summary with supporting details",
	StyleBulletPoints: "Key points as a bulleted list",
	StyleExecutive:    "High-level insights and recommendations",
	StyleAcademic:     "Formal summary covering methodology and findings",
}

const MergeSummariesTemplate = `The following are summaries of consecutive parts of one document.
Combine them into a single %s summary in %s without repeating points.
Maximum length: %d words.

Partial summaries:
%s`

const KeyPointsTemplate = `Extract the %d most important key points from the following text.
Present them as a numbered list of concise statements.

Text:
%s`

const QuestionsTemplate = `Generate %d insightful questions about the following text.
These should be questions that someone might ask to better understand the content.

Text:
%s`

const ChatContextTemplate = `You are an AI assistant that helps users understand PDF documents.
Here is the content of the PDF they're asking about:

%s

Please answer their questions based on this content. If the question cannot be answered
from the PDF content, politely say so. Be helpful, accurate, and concise.`

const HumanizeTemplate = `Task: Completely rewrite this text using different words and simpler language while keeping the exact same meaning. Change as many words as possible.

Text: %s

Rewritten version:`

// HumanizeMarkers are the template fragments a model sometimes echoes back.
var HumanizeMarkers = []string{
	"Task: Completely rewrite this text using different words and simpler language while keeping the exact same meaning. Change as many words as possible.",
	"Rewritten version:",
	"Text:",
}

type StyleInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

func Styles() []StyleInfo {
	order := []string{StyleConcise, StyleDetailed, StyleBulletPoints, StyleExecutive, StyleAcademic}
	out := make([]StyleInfo, 0, len(order))
	for _, id := range order {
		out = append(out, StyleInfo{ID: id, Description: styleDescriptions[id]})
	}
	return out
}

func ValidStyle(style string) bool {
	_, ok := summaryTemplates[style]
	return ok
}

func SummaryPrompt(style, text, language string, maxWords int) (string, error) {
	tmpl, ok := summaryTemplates[style]
	if !ok {
		return "", fmt.Errorf("unknown summary style %q", style)
	}
	return strings.TrimSpace(fmt.Sprintf(tmpl, language, maxWords, text)), nil
}

func MergeSummariesPrompt(style, language string, maxWords int, parts []string) string {
	return strings.TrimSpace(fmt.Sprintf(MergeSummariesTemplate, strings.ReplaceAll(style, "_", " "), language, maxWords, strings.Join(parts, "\n\n")))
}

func KeyPointsPrompt(text string, maxPoints int) string {
	return strings.TrimSpace(fmt.Sprintf(KeyPointsTemplate, maxPoints, text))
}

func QuestionsPrompt(text string, count int) string {
	return strings.TrimSpace(fmt.Sprintf(QuestionsTemplate, count, text))
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatPrompt renders the document context followed by the conversation and a trailing
// "Assistant:" cue.
func ChatPrompt(pdfContext string, messages []Message) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(fmt.Sprintf(ChatContextTemplate, pdfContext)))
	b.WriteString("\n\nConversation:\n")
	for _, m := range messages {
		role := strings.TrimSpace(m.Role)
		if role == "" {
			role = "user"
		}
		fmt.Fprintf(&b, "%s%s: %s\n", strings.ToUpper(role[:1]), strings.ToLower(role[1:]), m.Content)
	}
	b.WriteString("\nAssistant:")
	return b.String()
}

func HumanizePrompt(text string) string {
	return strings.TrimSpace(fmt.Sprintf(HumanizeTemplate, text))
}
