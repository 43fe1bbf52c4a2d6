package domain

import "fmt"

// Roster is an ordered, read-only index of people. Order is the load order
// and is significant: formation always scans people in this order.
type Roster struct {
	people []Person
	index  map[PersonID]int
}

func NewRoster(people []Person) (Roster, error) {
	if len(people) == 0 {
		return Roster{}, ErrEmptyRoster
	}

	r := Roster{
		people: make([]Person, 0, len(people)),
		index:  make(map[PersonID]int, len(people)),
	}
	for _, person := range people {
		if err := person.Validate(); err != nil {
			return Roster{}, err
		}
		if _, ok := r.index[person.ID]; ok {
			return Roster{}, fmt.Errorf("%w: %s", ErrDuplicatePerson, person.ID)
		}
		r.index[person.ID] = len(r.people)
		r.people = append(r.people, person)
	}

	return r, nil
}

func (r Roster) Len() int {
	return len(r.people)
}

// People returns a copy of the roster in load order.
func (r Roster) People() []Person {
	out := make([]Person, len(r.people))
	copy(out, r.people)
	return out
}

func (r Roster) Get(id PersonID) (Person, bool) {
	i, ok := r.index[id]
	if !ok {
		return Person{}, false
	}
	return r.people[i], true
}

func (r Roster) Contains(id PersonID) bool {
	_, ok := r.index[id]
	return ok
}

// UnknownReferences lists avoid/prefer entries that name nobody on the roster,
// keyed by the person who wrote them.
func (r Roster) UnknownReferences() map[PersonID][]PersonID {
	unknown := map[PersonID][]PersonID{}
	for _, person := range r.people {
		for _, ref := range append(append([]PersonID{}, person.Avoid...), person.Prefer...) {
			if !r.Contains(ref) {
				unknown[person.ID] = append(unknown[person.ID], ref)
			}
		}
	}
	return unknown
}
