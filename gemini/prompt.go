package gemini

import (
	"fmt"
	"unicode/utf8"
)

// MaxPromptTextChars is the hard cutoff applied to CV text before it is
// embedded in the prompt, keeping the request inside the model's context
// window. The cut is at the character boundary, not sentence-aware.
const MaxPromptTextChars = 18000

// JobPositionPlaceholder is substituted when the caller supplies no target
// position; the request must still succeed.
const JobPositionPlaceholder = "Not specified"

// BuildSummaryPrompt composes the fixed-section summarization prompt from the
// extracted CV text and the target position. Pure string transformation: the
// same input always yields byte-identical output.
func BuildSummaryPrompt(cvText, jobPosition string) string {
	if len(cvText) > MaxPromptTextChars {
		// Back off to a rune boundary so the cut never embeds a broken
		// UTF-8 sequence in the prompt
		cut := MaxPromptTextChars
		for cut > 0 && !utf8.RuneStart(cvText[cut]) {
			cut--
		}
		cvText = cvText[:cut]
	}
	if jobPosition == "" {
		jobPosition = JobPositionPlaceholder
	}

	return fmt.Sprintf(`You are an experienced HR analyst. Review the following CV/resume for the target position and produce a structured hiring summary.

TARGET POSITION: %s

Produce the summary with exactly these sections, in this order:

1. PROFESSIONAL SUMMARY
A 2-3 sentence overview of the candidate's profile and career focus.

2. KEY QUALIFICATIONS
The strongest qualifications relevant to the target position, as bullet points.

3. TECHNICAL SKILLS
Skills with an assessed proficiency level (Beginner/Intermediate/Advanced/Expert), inferred from how each skill appears in the work history.

4. WORK EXPERIENCE HIGHLIGHTS
The most relevant roles and accomplishments, most recent first.

5. EDUCATION & CERTIFICATIONS
Degrees, institutions, and professional certifications.

6. CAREER PROGRESSION ANALYSIS
Trajectory, seniority growth, and any notable gaps or transitions.

7. HIRING RECOMMENDATION
A clear recommendation (Strong fit / Potential fit / Weak fit) for the target position with a one-sentence rationale. If the target position is "%s", base the recommendation on the candidate's strongest area instead.

8. INTERVIEW FOCUS AREAS
3-5 topics the interviewer should probe, including any claims worth verifying.

Write in plain text with the numbered section headers above. Do not invent facts that are not supported by the CV.

CV TEXT:
%s`, jobPosition, JobPositionPlaceholder, cvText)
}
