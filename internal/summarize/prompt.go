package summarize

import "fmt"

// lengthSpecs describe the target size per tier, embedded in the
// instructions so every provider receives the same constraint.
var lengthSpecs = map[Length]string{
	LengthShort:  "2-3 sentences (50-75 words)",
	LengthMedium: "4-6 sentences (100-150 words)",
	LengthLong:   "7-10 sentences (200-250 words)",
}

// Instructions builds the provider-agnostic system instructions for a mode
// and length tier. The user text is sent separately by each adapter.
// Unrecognized modes fall back to paragraph.
func Instructions(mode Mode, length Length) string {
	spec, ok := lengthSpecs[length]
	if !ok {
		spec = lengthSpecs[LengthMedium]
	}

	switch mode {
	case ModeBullets:
		return fmt.Sprintf(`You are an expert at extracting and organizing key information from text.

Task: Extract the main points from the text and present them as a clear bullet-point list.

Length requirement: %s (distributed across bullet points)

Guidelines:
- Start each bullet with a dash (-)
- Each point should be concise and self-contained
- Use parallel grammatical structure
- Focus on actionable insights and key facts
- Order points by importance (most important first)

Provide only the bullet-point list, nothing else.`, spec)

	case ModeELI5:
		return fmt.Sprintf(`You are a patient teacher who explains complex topics to 5-year-old children using simple language and relatable examples.

Task: Explain the text as if you're talking to a 5-year-old child.

Length requirement: %s

Guidelines:
- Use VERY simple words (avoid jargon completely)
- Use everyday analogies and examples
- Break down complex ideas into small, digestible pieces
- Be warm and encouraging in tone

Provide only the ELI5 explanation, nothing else.`, spec)

	case ModeQuestions:
		return `You are a critical analyst who identifies the core questions that a piece of text addresses.

Task: Analyze the text and generate 3-5 key questions that it answers or addresses.

Guidelines:
- Each question should be clear, specific, and insightful
- Use proper question format (Who/What/Where/When/Why/How)
- Number each question (1., 2., 3., etc.)
- Questions should be standalone (understandable without reading the text)
- Prioritize questions by importance

Provide only the numbered list of questions, nothing else.`

	case ModeSEO:
		return `You are an expert SEO copywriter specializing in meta descriptions for web content.

Task: Create a compelling SEO meta description for the text.

CRITICAL Requirements:
- Maximum length: 155 characters (STRICT LIMIT)
- Include relevant keywords naturally
- Make it engaging and click-worthy
- Accurately represent the content
- Use active voice

Provide ONLY the meta description, nothing else.`

	default: // paragraph
		return fmt.Sprintf(`You are a professional text summarizer with expertise in condensing complex information.

Task: Summarize the text into a single, coherent paragraph.

Length requirement: %s

Guidelines:
- Maintain the core message and key points
- Use clear, professional language
- Ensure logical flow and coherence
- Do NOT use bullet points or lists
- Write in complete sentences with smooth transitions

Provide only the summary paragraph, nothing else.`, spec)
	}
}
