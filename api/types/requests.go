package types

// LoginRequest is the credential payload for token issuance
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest creates a new account
type CreateUserRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	FullName   string `json:"full_name"`
	Role       string `json:"role" binding:"omitempty,oneof=seller admin"`
	LocationID *uint  `json:"location_id"`
}

// CreateLocationRequest creates a sales floor
type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Comment string `json:"comment"`
}

// TranscribeRequest triggers a single-pass local transcription job
type TranscribeRequest struct {
	Model string `json:"model" binding:"omitempty,oneof=tiny base small medium large"`
}

// TranscribeXRequest triggers a diarizing transcription job
type TranscribeXRequest struct {
	Model            string `json:"model" binding:"omitempty,oneof=tiny base small medium large"`
	DiarizationToken string `json:"diarization_token"`
}

// TranscribeTextRequest commits operator-supplied text directly
type TranscribeTextRequest struct {
	Transcription string `json:"transcription" binding:"required"`
}
