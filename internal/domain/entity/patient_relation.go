package entity

// PatientRelation is a named relation type between two linked accounts
type PatientRelation struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

func (PatientRelation) TableName() string {
	return "patient_relations"
}

// Seeded relation type names
const (
	RelationParent        = "PARENT"
	RelationChild         = "CHILD"
	RelationConjoint      = "CONJOINT"
	RelationSpouseHusband = "SPOUSE/HUSBAND"
	RelationGrandParent   = "GD PARENT"
	RelationAuntUncle     = "AUNT/UNCLE"
	RelationCousin        = "COUSIN"
	RelationTutorship     = "TUTORSHIP"
	RelationSibling       = "BROTHER/SISTER"
)

// DefaultRelationNames lists the relation types in their seeded id order.
var DefaultRelationNames = []string{
	RelationParent,
	RelationChild,
	RelationConjoint,
	RelationSpouseHusband,
	RelationGrandParent,
	RelationAuntUncle,
	RelationCousin,
	RelationTutorship,
	RelationSibling,
}
