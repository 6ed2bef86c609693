package service

// SignContractCommand carries the signer's identity and the captured
// signature image for the signing flow.
type SignContractCommand struct {
	SignerName     string
	SignerEmail    string
	SignatureImage string
	SignerDevice   string
}
