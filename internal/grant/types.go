package grant

import "slices"

// Category is the program category shown in the basic details step.
type Category string

// Grant categories offered to council staff.
const (
	CategoryCommunityDevelopment Category = "Community Development"
	CategoryYouthPrograms        Category = "Youth Programs"
	CategoryEnvironmental        Category = "Environmental Sustainability"
	CategoryArtsCulture          Category = "Arts & Culture"
	CategorySportsRecreation     Category = "Sports & Recreation"
	CategoryEducationTraining    Category = "Education & Training"
	CategoryHealthWellbeing      Category = "Health & Wellbeing"
	CategoryInfrastructure       Category = "Infrastructure"
	CategoryEconomicDevelopment  Category = "Economic Development"
	CategoryEmergencyRelief      Category = "Emergency Relief"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryCommunityDevelopment,
	CategoryYouthPrograms,
	CategoryEnvironmental,
	CategoryArtsCulture,
	CategorySportsRecreation,
	CategoryEducationTraining,
	CategoryHealthWellbeing,
	CategoryInfrastructure,
	CategoryEconomicDevelopment,
	CategoryEmergencyRelief,
}

// Known reports whether c is one of Categories.
func (c Category) Known() bool {
	return slices.Contains(Categories, c)
}

// DocumentType is a supporting document applicants must attach.
type DocumentType string

// Document types that can be required from applicants.
const (
	DocOrganizationRegistration DocumentType = "Organization Registration"
	DocFinancialStatements      DocumentType = "Financial Statements"
	DocProjectBudget            DocumentType = "Project Budget"
	DocInsuranceCertificate     DocumentType = "Insurance Certificate"
	DocReferences               DocumentType = "References"
	DocProjectPlan              DocumentType = "Project Plan"
	DocImpactAssessment         DocumentType = "Impact Assessment"
	DocPartnershipAgreements    DocumentType = "Partnership Agreements"
)

// DocumentTypes lists every document type in display order.
var DocumentTypes = []DocumentType{
	DocOrganizationRegistration,
	DocFinancialStatements,
	DocProjectBudget,
	DocInsuranceCertificate,
	DocReferences,
	DocProjectPlan,
	DocImpactAssessment,
	DocPartnershipAgreements,
}

// AnswerType is the input kind of a custom application question.
type AnswerType string

// Answer types for custom questions.
const (
	AnswerText     AnswerType = "text"
	AnswerTextarea AnswerType = "textarea"
	AnswerNumber   AnswerType = "number"
	AnswerDate     AnswerType = "date"
	AnswerFile     AnswerType = "file"
)

// AnswerTypes lists every answer type in display order.
var AnswerTypes = []AnswerType{AnswerText, AnswerTextarea, AnswerNumber, AnswerDate, AnswerFile}

// Label returns the human readable name of the answer type.
func (a AnswerType) Label() string {
	switch a {
	case AnswerText:
		return "Text Response"
	case AnswerTextarea:
		return "Long Text"
	case AnswerNumber:
		return "Number"
	case AnswerDate:
		return "Date"
	case AnswerFile:
		return "File Upload"
	default:
		return string(a)
	}
}

// ReviewerRole is the role of a review committee member.
type ReviewerRole string

// Review committee roles.
const (
	RoleReviewer   ReviewerRole = "reviewer"
	RoleLead       ReviewerRole = "lead"
	RoleSpecialist ReviewerRole = "specialist"
)

// ReviewerRoles lists every role in display order.
var ReviewerRoles = []ReviewerRole{RoleReviewer, RoleLead, RoleSpecialist}

// Label returns the human readable name of the role.
func (r ReviewerRole) Label() string {
	switch r {
	case RoleReviewer:
		return "Reviewer"
	case RoleLead:
		return "Lead Reviewer"
	case RoleSpecialist:
		return "Subject Specialist"
	default:
		return string(r)
	}
}

// Status is the lifecycle state of a grant as reported by the API.
type Status string

// Grant statuses.
const (
	StatusDraft         Status = "draft"
	StatusPublished     Status = "published"
	StatusPendingReview Status = "pending_review"
	StatusClosed        Status = "closed"
	StatusSuspended     Status = "suspended"
	StatusArchived      Status = "archived"
)

// Question is a custom question added to the application form.
type Question struct {
	Question string     `json:"question" yaml:"question"`
	Type     AnswerType `json:"type" yaml:"type"`
	Required bool       `json:"required" yaml:"required"`
}

// NewQuestion returns a question with the default answer type.
func NewQuestion(prompt string) Question {
	return Question{Question: prompt, Type: AnswerText}
}

// Reviewer is a member of the review committee.
type Reviewer struct {
	Name  string       `json:"name" yaml:"name"`
	Email string       `json:"email" yaml:"email"`
	Role  ReviewerRole `json:"role" yaml:"role"`
}

// NewReviewer returns a reviewer with the default role.
func NewReviewer(name, email string) Reviewer {
	return Reviewer{Name: name, Email: email, Role: RoleReviewer}
}

// NotificationSettings controls who is notified about the grant.
type NotificationSettings struct {
	EmailApplicants    bool `json:"emailApplicants" yaml:"email_applicants"`
	EmailCommittee     bool `json:"emailCommittee" yaml:"email_committee"`
	PublicAnnouncement bool `json:"publicAnnouncement" yaml:"public_announcement"`
}
