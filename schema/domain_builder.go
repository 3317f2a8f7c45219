package schema

// DomainBuilder refines one DomainSpec.
type DomainBuilder struct {
	b    *Builder
	spec *DomainSpec
}

// Inherits declares parent domains (fragments or concrete), in
// declaration order. Inheritance is transitive and must be acyclic;
// cycles are reported as a construction error at Build().
func (db *DomainBuilder) Inherits(parents ...DomainHandle) *DomainBuilder {
	for _, p := range parents {
		db.spec.Parents = append(db.spec.Parents, p.Name())
	}
	return db
}

func (db *DomainBuilder) Label(text string) *DomainBuilder {
	db.spec.Label = text
	return db
}

func (db *DomainBuilder) Description(text string) *DomainBuilder {
	db.spec.Description = text
	return db
}

// Require adds a Require constraint local to this domain (fires when
// this domain is active, or inherited by the active domain).
func (db *DomainBuilder) Require(owner string) *DomainBuilder {
	db.spec.Constraints = append(db.spec.Constraints, Require(owner))
	return db
}

func (db *DomainBuilder) RequireIfAnyPresent(owner string, refs ...string) *DomainBuilder {
	db.spec.Constraints = append(db.spec.Constraints, RequireIfAnyPresent(owner, refs...))
	return db
}

func (db *DomainBuilder) RequireIfAllPresent(owner string, refs ...string) *DomainBuilder {
	db.spec.Constraints = append(db.spec.Constraints, RequireIfAllPresent(owner, refs...))
	return db
}

func (db *DomainBuilder) RequireIfAnyAbsent(owner string, refs ...string) *DomainBuilder {
	db.spec.Constraints = append(db.spec.Constraints, RequireIfAnyAbsent(owner, refs...))
	return db
}

func (db *DomainBuilder) RequireIfAllAbsent(owner string, refs ...string) *DomainBuilder {
	db.spec.Constraints = append(db.spec.Constraints, RequireIfAllAbsent(owner, refs...))
	return db
}

func (db *DomainBuilder) RequireIfValue(owner, ref string, pred func(v any) bool) *DomainBuilder {
	db.spec.Constraints = append(db.spec.Constraints, RequireIfValue(owner, ref, pred))
	return db
}

func (db *DomainBuilder) Group(kind GroupKind, members ...string) *DomainBuilder {
	db.spec.Constraints = append(db.spec.Constraints, Group(kind, members...))
	return db
}

func (db *DomainBuilder) Conflict(members ...string) *DomainBuilder {
	db.spec.Constraints = append(db.spec.Constraints, Conflict(members...))
	return db
}

// Handle finalizes the domain into a DomainHandle, usable as an
// Inherits() argument by descendant domains.
func (db *DomainBuilder) Handle() DomainHandle {
	return DomainHandle{name: db.spec.Owner}
}
