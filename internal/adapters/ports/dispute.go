package ports

import "context"

// DisputeRequest targets one dispute by its pspReference
type DisputeRequest struct {
	DisputePSPReference string
}

// DefendDisputeRequest contests a dispute with a defense reason
type DefendDisputeRequest struct {
	DisputePSPReference string
	DefenseReasonCode   string
}

// DefenseDocument is one piece of defense evidence, base64 encoded
type DefenseDocument struct {
	Content                 string `json:"content"`
	ContentType             string `json:"contentType"`
	DefenseDocumentTypeCode string `json:"defenseDocumentTypeCode"`
}

// SupplyDefenseDocumentRequest attaches evidence to a dispute
type SupplyDefenseDocumentRequest struct {
	DisputePSPReference string
	Document            DefenseDocument
}

// DeleteDefenseDocumentRequest removes previously supplied evidence
type DeleteDefenseDocumentRequest struct {
	DisputePSPReference string
	DocumentType        string
}

// DisputeServiceResponse is the generic success/error envelope of the
// dispute service
type DisputeServiceResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// DefenseReason is one applicable way to contest a dispute
type DefenseReason struct {
	DefenseReasonCode  string   `json:"defenseReasonCode"`
	Satisfied          bool     `json:"satisfied"`
	RequiredDocuments  []string `json:"requiredDocuments,omitempty"`
	OptionalDocuments  []string `json:"optionalDocuments,omitempty"`
}

// DefenseReasonsResponse lists the reasons applicable to a dispute
type DefenseReasonsResponse struct {
	DisputeServiceResponse
	DefenseReasons []DefenseReason `json:"defenseReasons"`
}

// DisputeAdapter manages chargebacks and disputes
type DisputeAdapter interface {
	Accept(ctx context.Context, req *DisputeRequest) (*DisputeServiceResponse, error)
	Defend(ctx context.Context, req *DefendDisputeRequest) (*DisputeServiceResponse, error)
	DefenseReasons(ctx context.Context, req *DisputeRequest) (*DefenseReasonsResponse, error)
	SupplyDefenseDocument(ctx context.Context, req *SupplyDefenseDocumentRequest) (*DisputeServiceResponse, error)
	DeleteDefenseDocument(ctx context.Context, req *DeleteDefenseDocumentRequest) (*DisputeServiceResponse, error)
}
