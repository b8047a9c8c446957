// Package finance implements the financial-documentation questionnaire as an
// explicit finite state machine: typed node IDs, a deterministic transition
// function, and terminal nodes that classify the documentation strategy and
// carry guidance text. The full graph is statically enumerable.
package finance

// NodeID names one state of the questionnaire.
type NodeID string

// Question nodes.
const (
	NodeEmploymentStatus   NodeID = "employment-status"
	NodeCurrentIncome      NodeID = "current-income-meets-guideline"
	NodeIncomeDocumented   NodeID = "income-on-latest-tax-return"
	NodeIncomeStable       NodeID = "income-stable-or-rising"
	NodeEmployerLetter     NodeID = "employer-letter-available"
	NodeSelfEmployedIncome NodeID = "self-employed-income-meets-guideline"
	NodeSelfEmployedTaxes  NodeID = "self-employed-schedule-filed"
	NodeRetirementIncome   NodeID = "retirement-income-meets-guideline"
	NodeAssets             NodeID = "assets-cover-shortfall"
	NodeAssetDocumented    NodeID = "assets-documentable"
	NodeJointSponsor       NodeID = "joint-sponsor-available"
)

// Terminal nodes. Each classifies a documentation strategy; they present
// guidance and perform no further computation.
const (
	EndpointDirect           NodeID = "meets-income-directly"
	EndpointSupplementary    NodeID = "needs-supplementary-docs"
	EndpointEmployerLetter   NodeID = "employment-letter-proof"
	EndpointSelfEmployedDocs NodeID = "self-employment-docs"
	EndpointRetirementDocs   NodeID = "retirement-income-docs"
	EndpointAssetBased       NodeID = "asset-based-coverage"
	EndpointJointSponsor     NodeID = "joint-sponsor-route"
	EndpointInsufficient     NodeID = "insufficient-support"
	EndpointManualReview     NodeID = "financial-manual-review"
)

// Option is one selectable answer on a question node.
type Option struct {
	Answer string `json:"answer"`
	Label  string `json:"label"`
	Next   NodeID `json:"next"`
}

// Question is a non-terminal node.
type Question struct {
	ID      NodeID   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// Endpoint is a terminal node with guidance for the applicant.
type Endpoint struct {
	ID       NodeID `json:"id"`
	Strategy string `json:"strategy"`
	Guidance string `json:"guidance"`
}

var questions = map[NodeID]Question{
	NodeEmploymentStatus: {
		ID:     NodeEmploymentStatus,
		Prompt: "What is the sponsor's current employment situation?",
		Options: []Option{
			{Answer: "employed", Label: "Employed by a company", Next: NodeCurrentIncome},
			{Answer: "self-employed", Label: "Self-employed", Next: NodeSelfEmployedIncome},
			{Answer: "retired", Label: "Retired", Next: NodeRetirementIncome},
			{Answer: "unemployed", Label: "Not currently working", Next: NodeAssets},
		},
	},
	NodeCurrentIncome: {
		ID:     NodeCurrentIncome,
		Prompt: "Does the sponsor's current annual income meet the federal poverty guideline for the household size?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: NodeIncomeDocumented},
			{Answer: "no", Label: "No", Next: NodeAssets},
		},
	},
	NodeIncomeDocumented: {
		ID:     NodeIncomeDocumented,
		Prompt: "Does the most recent federal tax return show that income?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: NodeIncomeStable},
			{Answer: "no", Label: "No", Next: NodeEmployerLetter},
		},
	},
	NodeIncomeStable: {
		ID:     NodeIncomeStable,
		Prompt: "Is current income the same as or higher than on that return?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: EndpointDirect},
			{Answer: "no", Label: "No", Next: EndpointSupplementary},
		},
	},
	NodeEmployerLetter: {
		ID:     NodeEmployerLetter,
		Prompt: "Can the sponsor obtain a letter from their employer confirming salary and start date?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: EndpointEmployerLetter},
			{Answer: "no", Label: "No", Next: EndpointSupplementary},
		},
	},
	NodeSelfEmployedIncome: {
		ID:     NodeSelfEmployedIncome,
		Prompt: "Does the sponsor's net self-employment income meet the federal poverty guideline?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: NodeSelfEmployedTaxes},
			{Answer: "no", Label: "No", Next: NodeAssets},
		},
	},
	NodeSelfEmployedTaxes: {
		ID:     NodeSelfEmployedTaxes,
		Prompt: "Has the sponsor filed a tax return with self-employment schedules for the most recent year?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: EndpointSelfEmployedDocs},
			{Answer: "no", Label: "No", Next: EndpointManualReview},
		},
	},
	NodeRetirementIncome: {
		ID:     NodeRetirementIncome,
		Prompt: "Do pension, social security, and other retirement income meet the federal poverty guideline?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: EndpointRetirementDocs},
			{Answer: "no", Label: "No", Next: NodeAssets},
		},
	},
	NodeAssets: {
		ID:     NodeAssets,
		Prompt: "Do the sponsor's liquid assets cover at least three times the income shortfall?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: NodeAssetDocumented},
			{Answer: "no", Label: "No", Next: NodeJointSponsor},
		},
	},
	NodeAssetDocumented: {
		ID:     NodeAssetDocumented,
		Prompt: "Can those assets be documented with statements covering the last twelve months?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: EndpointAssetBased},
			{Answer: "no", Label: "No", Next: NodeJointSponsor},
		},
	},
	NodeJointSponsor: {
		ID:     NodeJointSponsor,
		Prompt: "Is a household member or joint sponsor willing to sign a separate declaration of support?",
		Options: []Option{
			{Answer: "yes", Label: "Yes", Next: EndpointJointSponsor},
			{Answer: "no", Label: "No", Next: EndpointInsufficient},
		},
	},
}

var endpoints = map[NodeID]Endpoint{
	EndpointDirect: {
		ID:       EndpointDirect,
		Strategy: "direct",
		Guidance: "Income meets the guideline and is documented. Submit the most recent tax return with the declaration of support.",
	},
	EndpointSupplementary: {
		ID:       EndpointSupplementary,
		Strategy: "supplementary",
		Guidance: "Submit the tax return together with recent pay statements and a W-2 to establish current income.",
	},
	EndpointEmployerLetter: {
		ID:       EndpointEmployerLetter,
		Strategy: "employer-letter",
		Guidance: "Submit an employment letter on company letterhead stating salary, position, and start date, with recent pay statements.",
	},
	EndpointSelfEmployedDocs: {
		ID:       EndpointSelfEmployedDocs,
		Strategy: "self-employment",
		Guidance: "Submit the full tax return including self-employment schedules, plus business registration or license if available.",
	},
	EndpointRetirementDocs: {
		ID:       EndpointRetirementDocs,
		Strategy: "retirement",
		Guidance: "Submit pension or benefit award letters and the most recent tax return documenting retirement income.",
	},
	EndpointAssetBased: {
		ID:       EndpointAssetBased,
		Strategy: "asset-based",
		Guidance: "Submit twelve months of statements for each asset used to cover the shortfall, with evidence of ownership and value.",
	},
	EndpointJointSponsor: {
		ID:       EndpointJointSponsor,
		Strategy: "joint-sponsor",
		Guidance: "The joint sponsor completes their own declaration of support with their own income documentation.",
	},
	EndpointInsufficient: {
		ID:       EndpointInsufficient,
		Strategy: "insufficient",
		Guidance: "The petition cannot currently show adequate financial support. Contact support to discuss options before filing.",
	},
	EndpointManualReview: {
		ID:       EndpointManualReview,
		Strategy: "manual-review",
		Guidance: "Self-employment without filed schedules needs individual review. Contact support before proceeding.",
	},
}
