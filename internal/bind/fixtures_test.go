package bind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/logger"
)

type owner struct {
	Name   string
	Nick   *string
	Age    int16
	Active bool
	Motto  string
	Pets   []*pet
	Checks []check
}

func (o *owner) Key() string { return o.Name }

type named struct {
	Name string
}

type pet struct {
	named
	Species *string
	Toys    []*toy
	parent  bind.Ref
}

func (p *pet) Key() string            { return p.Name }
func (p *pet) SetParent(ref bind.Ref) { p.parent = ref }

type toy struct {
	Label  string
	parent bind.Ref
}

func (t *toy) SetParent(ref bind.Ref) { t.parent = ref }

type check struct {
	Level int32
	OK    bool
}

func newCheck(args []any, ok bool) check {
	return check{Level: args[0].(int32), OK: ok}
}

var namedType = bind.NewBase("named",
	bind.String("name", "NAME", func(n *named) *string { return &n.Name }),
)

var toyType = bind.NewType[toy]("toy",
	bind.String("label", "LABEL", func(t *toy) *string { return &t.Label }),
)

var petType = bind.Extends(bind.NewType[pet]("pet",
	bind.NullString("species", "SPECIES", func(p *pet) **string { return &p.Species }),
	bind.Rows("toys", toyType, func(p *pet) *[]*toy { return &p.Toys },
		bind.Invoke("getToys", bind.KindString).With(bind.Back("name", func(p *pet) any { return p.Name }))),
), namedType, func(p *pet) *named { return &p.named })

var ownerType = bind.NewType[owner]("owner",
	bind.String("name", "NAME", func(o *owner) *string { return &o.Name }),
	bind.NullString("nick", "NICK", func(o *owner) **string { return &o.Nick }),
	bind.Int16("age", "AGE", func(o *owner) *int16 { return &o.Age }),
	bind.Bool("active", "ACTIVE", func(o *owner) *bool { return &o.Active }),
	bind.String("motto", "", func(o *owner) *string { return &o.Motto }).From(bind.Invoke("getMotto")),
	bind.Rows("pets", petType, func(o *owner) *[]*pet { return &o.Pets },
		bind.Invoke("getPets", bind.KindString).With(bind.Back("name", func(o *owner) any { return o.Name }))),
	bind.Facts("checks", func(o *owner) *[]check { return &o.Checks }, newCheck,
		bind.Invoke("check", bind.KindInt32).With(bind.Literal(1)).With(bind.Literal(2))),
)

var ownerLabels = []string{"NAME", "NICK", "AGE", "ACTIVE"}

func newSession(t *testing.T, src bind.Source, opts bind.Options) *bind.Session {
	t.Helper()
	s, err := bind.NewSession(src, opts, logger.NewNop())
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }
