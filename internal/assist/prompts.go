package assist

// Instruction sets for the two provider calls. Extraction asks for
// strict JSON only; generation carries the continuity rules the reply
// must follow. Neither payload is ever shown to the end user.

const ExtractionSystemPrompt = `You extract structured fields from customer messages.
Return ONLY strict JSON and no extra text.`

// %s — the sanitized conversation context.
const ExtractionRequestTemplate = `Return ONLY JSON with keys: issue_type, location, trigger, urgency, missing_information.
If info is missing, set value to 'Not Available'.
If conflicting, mention conflict under missing_information as separate item.
missing_information must be an array of strings.

Input text: "%s"`

const ReplySystemPrompt = `You are a professional support assistant for a lead-response service.
Maintain topic continuity across turns, avoid repeating previously asked questions,
and respond naturally in client-friendly language. Do not invent facts, completed
actions, or guarantees. Keep follow-up questions specific and minimal.`

// %s, %s, %s — transcript, latest message, extraction JSON.
const ReplyRequestTemplate = `Use the conversation and latest message to craft the next assistant reply.
Requirements:
1) Acknowledge the latest user message naturally.
2) Continue from prior context; do not reset the conversation.
3) Do not repeat questions already asked unless absolutely necessary.
4) Ask only relevant follow-up questions still needed.
5) Provide safe next steps without guarantees.
6) Avoid technical jargon and keep it concise.
7) Return only assistant reply text.

Conversation history:
%s

Latest user message: %s

Internal structured extraction (not for display): %s`

// Static replies used when generation fails or guardrails leave nothing
// usable. Worded to stay compliant with the guardrail rules themselves.
const (
	FallbackGenerationReply = "Thanks for your message. We are reviewing the details you shared and will follow up with the most suitable next step. Is there anything else about the situation you would like to add?"

	FallbackEmptyReply = "Thanks for sharing that. Based on what you described, an inspection may help confirm the exact cause and guide the next step."

	FallbackFilteredReply = "Thanks for the update. An inspection may help confirm the exact cause and the most suitable next step."
)
