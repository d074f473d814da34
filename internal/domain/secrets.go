package domain

// GeminiAPIKeySecret is the secret store key holding the Gemini API key.
const GeminiAPIKeySecret = "leetcoder/gemini/api_key"
