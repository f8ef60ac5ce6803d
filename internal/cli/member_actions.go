package cli

import (
	"context"

	"librarian/internal/member"

	"github.com/google/uuid"
)

type addMemberInput struct {
	ID   string
	Name string `validate:"required"`
}

// addMember drives option 2. A blank ID gets a generated one.
func (m *Menu) addMember(ctx context.Context) {
	id, ok := m.promptLine("Enter Member ID: ")
	if !ok {
		return
	}
	name, ok := m.promptLine("Enter Name: ")
	if !ok {
		return
	}

	if id == "" {
		id = uuid.NewString()
	}
	in := addMemberInput{ID: id, Name: name}
	if errs := ValidateStruct(in); len(errs) > 0 {
		m.printValidationErrors(errs)
		return
	}

	if err := m.members.Add(ctx, member.Member{ID: in.ID, Name: in.Name}); err != nil {
		m.printError(err)
		return
	}
	m.println("Member added successfully!")
}

// listMembers drives option 4.
func (m *Menu) listMembers(ctx context.Context) {
	members, err := m.members.List(ctx)
	if err != nil {
		m.printError(err)
		return
	}
	if len(members) == 0 {
		m.println("No members in the library.")
		return
	}
	for _, mem := range members {
		m.printMember(mem)
	}
}
