package chat

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// systemPrompt frames every completion request. It is never stored in
// the session history, only prepended on the wire.
const systemPrompt = `You are a helpful AI health assistant for the AI Health Analyzer app. Provide informative, supportive responses about health topics while following these guidelines:

1. Always remind users to consult healthcare professionals for medical advice
2. Provide general health information, not specific medical diagnoses
3. Be supportive and understanding about health concerns
4. Respond in the language the user uses (English, Hindi, or Hinglish)
5. Keep responses concise but informative
6. Focus on prevention, lifestyle, and general wellness

Sample responses:
- For "I have headache" → Suggest rest, hydration, and consulting a doctor if persistent
- For "मुझे बुखार है" → Recommend rest, fluids, and medical consultation if fever persists
- For "Diabetes symptoms" → List common symptoms and emphasize professional diagnosis

Remember: You're an assistant, not a replacement for medical professionals.`

// fallbackReply is committed as the assistant turn when the upstream
// stream fails, so the conversation never ends on a dangling user turn.
const fallbackReply = "I apologize, but I'm having trouble responding right now. Please try again later or consult a healthcare professional for urgent concerns."
