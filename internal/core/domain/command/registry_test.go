package command

import (
	"context"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockCommand struct {
	policy *domain.Policy
}

func (m *MockCommand) Policy() *domain.Policy {
	return m.policy
}

func (m *MockCommand) RunMessage(_ context.Context, _ *domain.Invocation, _ port.Replier) error {
	return nil
}

type MockInteractionCommand struct {
	MockCommand
}

func (m *MockInteractionCommand) RunInteraction(_ context.Context, _ *domain.Invocation, _ port.Replier) error {
	return nil
}

// MockPolicyOnly implements no handler variant.
type MockPolicyOnly struct {
	policy *domain.Policy
}

func (m *MockPolicyOnly) Policy() *domain.Policy {
	return m.policy
}

func newMock(name string, aliases ...string) *MockCommand {
	return &MockCommand{policy: &domain.Policy{Name: name, Aliases: aliases, Enabled: true}}
}

func TestRegister(t *testing.T) {
	cr := &Registry{}
	mr := newMock("test")

	require.NoError(t, cr.Register(mr))
	assert.Len(t, cr.commands, 1)
}

func TestRegisterInvalidPolicy(t *testing.T) {
	cr := &Registry{}

	err := cr.Register(newMock("Test"))
	require.ErrorIs(t, err, domain.ErrInvalidPolicy)
	assert.Empty(t, cr.commands)
}

func TestRegisterMissingHandler(t *testing.T) {
	cr := &Registry{}

	err := cr.Register(&MockPolicyOnly{policy: &domain.Policy{Name: "test", Enabled: true}})
	require.ErrorIs(t, err, domain.ErrNotImplemented)

	err = cr.Register(&MockCommand{policy: &domain.Policy{Name: "test",
		Interaction: domain.InteractionPolicy{Enabled: true}}})
	require.ErrorIs(t, err, domain.ErrNotImplemented)

	err = cr.Register(&MockInteractionCommand{MockCommand{policy: &domain.Policy{Name: "test",
		Interaction: domain.InteractionPolicy{Enabled: true}}}})
	require.NoError(t, err)
}

func TestRegisterDuplicate(t *testing.T) {
	tests := []struct {
		name   string
		second *MockCommand
	}{
		{name: "same name", second: newMock("list")},
		{name: "name clashes with alias", second: newMock("ls")},
		{name: "alias clashes with name", second: newMock("show", "list")},
		{name: "alias clashes with alias", second: newMock("show", "ls")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr := &Registry{}
			require.NoError(t, cr.Register(newMock("list", "ls")))

			err := cr.Register(tt.second)
			require.ErrorIs(t, err, domain.ErrDuplicateCommand)
			assert.Len(t, cr.commands, 1)
		})
	}
}

func TestMustRegister(t *testing.T) {
	cr := &Registry{}

	assert.NotPanics(t, func() { cr.MustRegister(newMock("a"), newMock("b")) })
	assert.Panics(t, func() { cr.MustRegister(newMock("C")) })
}

func TestGetNotRegistered(t *testing.T) {
	cr := &Registry{}

	_, err := cr.Get("test")
	require.ErrorIs(t, err, domain.ErrRegistryNotInitialized)
}

func TestGetCommandNotFound(t *testing.T) {
	cr := &Registry{}
	require.NoError(t, cr.Register(newMock("test")))

	_, err := cr.Get("foo")
	require.ErrorIs(t, err, domain.ErrCommandNotFound)
}

func TestGetCommandFound(t *testing.T) {
	cr := &Registry{}
	require.NoError(t, cr.Register(newMock("list", "ls")))

	for _, name := range []string{"list", "ls", "LIST", "Ls"} {
		cmd, err := cr.Get(name)
		require.NoError(t, err)
		assert.Equal(t, "list", cmd.Policy().Name)
	}
}

func TestListCommands(t *testing.T) {
	cr := &Registry{}
	require.NoError(t, cr.Register(newMock("foo")))
	require.NoError(t, cr.Register(newMock("bar", "b")))

	assert.Equal(t, []string{"bar", "foo"}, cr.ListCommands())

	cmds := cr.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, "bar", cmds[0].Policy().Name)
	assert.Equal(t, "foo", cmds[1].Policy().Name)
}

func TestParseCommand(t *testing.T) {
	type TestCase struct {
		description string
		text        string
		prefix      string
		wantInvoke  string
		wantArgs    []string
		wantOK      bool
	}

	testCases := []TestCase{
		{
			description: "command without args",
			text:        "!ping",
			prefix:      "!",
			wantInvoke:  "ping",
			wantArgs:    []string{},
			wantOK:      true,
		},
		{
			description: "command with args",
			text:        "!ban  @user spamming  links",
			prefix:      "!",
			wantInvoke:  "ban",
			wantArgs:    []string{"@user", "spamming", "links"},
			wantOK:      true,
		},
		{
			description: "invoke is lowercased",
			text:        "!PiNg",
			prefix:      "!",
			wantInvoke:  "ping",
			wantArgs:    []string{},
			wantOK:      true,
		},
		{
			description: "multi character prefix",
			text:        "bot! help ban",
			prefix:      "bot!",
			wantInvoke:  "help",
			wantArgs:    []string{"ban"},
			wantOK:      true,
		},
		{
			description: "missing prefix",
			text:        "ping",
			prefix:      "!",
		},
		{
			description: "prefix only",
			text:        "! ",
			prefix:      "!",
		},
		{
			description: "empty prefix",
			text:        "ping",
			prefix:      "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			invoke, args, ok := ParseCommand(testCase.text, testCase.prefix)

			assert.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.wantInvoke, invoke)
			assert.Equal(t, testCase.wantArgs, args)
		})
	}
}
