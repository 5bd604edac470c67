package geneticsqa

import (
	"fmt"
	"strings"
)

// Prompt templates carry {placeholder} tokens substituted by the builders
// below. Substitution is total over a well-formed work item; builders never
// fail.

const legacyGenerationPrompt = `You are an expert genetics professor creating challenging multiple-choice questions for graduate-level students.

Generate a multiple-choice question about: {topic}

Requirements:
1. The question should require REASONING, not just fact recall
2. Include exactly 8 answer options (A through H)
3. Make the wrong answers plausible - they should represent common misconceptions
4. Provide detailed step-by-step reasoning that works through the problem
5. The reasoning should explicitly consider why wrong answers are wrong

Format your response as JSON with this exact structure:
{
    "question": "The full question text",
    "options": {
        "A": "First option",
        "B": "Second option",
        "C": "Third option",
        "D": "Fourth option",
        "E": "Fifth option",
        "F": "Sixth option",
        "G": "Seventh option",
        "H": "Eighth option"
    },
    "thinking": "Step-by-step reasoning that a student should use to solve this problem. Start with what we know, work through the logic, consider each option, and arrive at the answer.",
    "correct_answer": "The letter of the correct answer (A-H)",
    "topic": "{category}",
    "subtopic": "{topic}"
}

Return ONLY the JSON, no other text.`

const currentGenerationPrompt = `You are an expert biology professor creating exam questions for MMLU-Pro Biology. Your questions will be reviewed by a PhD molecular biologist, so accuracy is critical.

Generate a multiple-choice question about: {topic}

CRITICAL REQUIREMENTS:

1. ACCURACY FIRST: Only write questions where you are highly confident in the correct answer. If a topic is ambiguous or has competing valid interpretations, choose a different angle.

2. QUESTION STYLE: Write questions that match MMLU-Pro Biology format. Use varied question structures:
   - "Which of the following best describes...?"
   - "What would be the expected result if...?"
   - "Which statement about X is correct?"
   - "The process of X requires which of the following?"
   - "A mutation in gene X would most likely affect...?"
   - "Which of the following is true regarding...?"

   DO NOT start every question with "A researcher observes..." — vary your approach.

   Mix of question types:
   - ~50% application/reasoning (predict outcomes, explain mechanisms)
   - ~50% knowledge (identify correct statements, recall key facts)

3. SIMPLE AND DIRECT: Questions should be clear and concise. Avoid unnecessarily complex scenarios.

4. AVOID ARITHMETIC: Do not write questions requiring multi-step calculations.

5. ONE CLEAR ANSWER: There must be exactly one defensible correct answer. All distractors must be clearly wrong to an expert.

6. ANSWER OPTIONS: Provide exactly 10 options (A-J). Keep options concise (typically under 15 words each). Distractors should represent plausible misconceptions.

7. REASONING: Provide brief reasoning (2-4 sentences) explaining why the correct answer is right and why key distractors are wrong.

8. SELF-CHECK: Before outputting, verify:
   - Does the reasoning support your chosen answer?
   - Is there any option that could arguably be more correct?
   - Would a biology PhD agree with your answer?

9. CORE CONCEPT TAG: Provide a short (3-5 word) tag identifying the specific concept being tested.

   Examples of GOOD tags (specific):
   - "Dom34 ribosome rescue function"
   - "telomerase RNA template role"
   - "histone acetylation transcription activation"

   Examples of BAD tags (too vague):
   - "gene regulation"
   - "DNA repair"

ALREADY COVERED CONCEPTS (do not repeat these):
{covered_concepts}

Output JSON with this exact structure:
{
    "question": "The question text",
    "options": {
        "A": "First option",
        "B": "Second option",
        "C": "Third option",
        "D": "Fourth option",
        "E": "Fifth option",
        "F": "Sixth option",
        "G": "Seventh option",
        "H": "Eighth option",
        "I": "Ninth option",
        "J": "Tenth option"
    },
    "core_concept": "3-5 word specific concept tag",
    "reasoning": "Brief explanation (2-4 sentences) of why the answer is correct",
    "correct_answer": "The letter (A-J)",
    "confidence": "high/medium/low",
    "topic": "{category}",
    "subtopic": "{topic}"
}

Only output questions where your confidence is HIGH.

Return ONLY the JSON, no other text.`

const reviewPrompt = `You are a PhD molecular biologist reviewing multiple-choice exam questions for accuracy and quality.

Review the following question and assess whether it has any issues:

QUESTION:
{question}

OPTIONS:
{options}

STATED CORRECT ANSWER: {correct_answer}

REASONING PROVIDED:
{reasoning}

---

Check for the following issues:

1. MULTIPLE DEFENSIBLE ANSWERS: Could a knowledgeable expert reasonably argue for a different answer than the stated correct one? Are any distractors actually correct or partially correct?

2. ACCURACY: Is the stated correct answer actually correct? Is the reasoning factually accurate? Are there any scientific errors?

3. REASONING SUPPORTS CONCLUSION: Does the provided reasoning actually lead to the stated answer, or does it contradict itself?

4. AMBIGUITY: Is the question wording clear? Could it be interpreted in multiple ways that would lead to different answers?

5. QUESTION QUALITY: Is this a good test of understanding, or is it flawed in some way?

Respond with JSON in this exact format:
{
    "verdict": "PASS" or "FLAG",
    "confidence": "high" or "medium" or "low",
    "concerns": ["list", "of", "specific", "concerns"] or [],
    "notes": "Brief explanation of your assessment"
}

If you have ANY uncertainty or concerns about accuracy or question quality, set verdict to "FLAG".
Only set verdict to "PASS" if you are confident the question is accurate and has exactly one defensible answer.

Return ONLY the JSON, no other text.`

const defensePrompt = `You are a PhD molecular biologist. Your task is to DEFEND this multiple-choice question as suitable for an exam.

QUESTION:
{question}

OPTIONS:
{options}

STATED CORRECT ANSWER: {correct_answer}

---

Make the strongest case you can that:
1. The stated answer ({correct_answer}) is DEFINITIVELY correct
2. NO other option is defensible as correct
3. The question is clear and unambiguous

Really try to defend it. But be honest — if you cannot make a confident defense, say so.

Respond with JSON in this exact format:
{
    "can_defend": true or false,
    "defense": "Your argument for why this question is solid" OR "Why you cannot defend it",
    "weak_points": ["Any reservations you have, even if you can still defend it overall"]
}

Set "can_defend" to true ONLY if you can confidently argue that the stated answer is correct AND no other option is defensible.

Return ONLY the JSON, no other text.`

// BuildGenerationPrompt renders the generation template for one work item.
// The covered-concepts section only exists in the current variant; the
// legacy template simply has no such placeholder.
func BuildGenerationPrompt(s Schema, item WorkItem, reg *ConceptRegistry) string {
	tpl := currentGenerationPrompt
	if s.Name == LegacySchema.Name {
		tpl = legacyGenerationPrompt
	}
	r := strings.NewReplacer(
		"{topic}", item.Topic,
		"{category}", item.Category,
		"{covered_concepts}", reg.Bulleted(),
	)
	return r.Replace(tpl)
}

// BuildReviewPrompt renders the auto-review template for one question.
func BuildReviewPrompt(q *Question) string {
	r := strings.NewReplacer(
		"{question}", q.Question,
		"{options}", FormatOptions(q.Options),
		"{correct_answer}", q.CorrectAnswer,
		"{reasoning}", q.Rationale(),
	)
	return r.Replace(reviewPrompt)
}

// BuildDefensePrompt renders the auto-defense template for one question.
func BuildDefensePrompt(q *Question) string {
	r := strings.NewReplacer(
		"{question}", q.Question,
		"{options}", FormatOptions(q.Options),
		"{correct_answer}", q.CorrectAnswer,
	)
	return r.Replace(defensePrompt)
}

// FormatOptions renders an options map as "A. text" lines in letter order.
func FormatOptions(options map[string]string) string {
	q := Question{Options: options}
	var sb strings.Builder
	for i, letter := range q.Letters() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s. %s", letter, options[letter]))
	}
	return sb.String()
}
