package class

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/go-drift/declare/pkg/errors"
	"github.com/go-drift/declare/pkg/object"
)

// recordArgs stores its arguments on the receiver.
func recordArgs(this *object.Object, args ...any) (any, error) {
	this.Set("args", args)
	return "ignored", nil
}

func TestNewRunsInitializeWithArgs(t *testing.T) {
	typ := mustDeclare(t, "Recorder", nil, map[string]any{InitializeKey: object.Func(recordArgs)})

	inst, err := typ.New(1, "two", 3.0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := inst.Get("args"), []any{1, "two", 3.0}; !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
	if TypeOf(inst) != typ {
		t.Error("instance should be branded with its type")
	}
}

func TestNewWithoutInitialize(t *testing.T) {
	typ := mustDeclare(t, "Empty")
	inst, err := typ.New("ignored")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if keys := inst.OwnKeys(); len(keys) != 0 {
		t.Errorf("OwnKeys() = %v, want none", keys)
	}
}

func TestCallEquivalentToNew(t *testing.T) {
	base := mustDeclare(t, "Base", nil, map[string]any{InitializeKey: object.Func(recordArgs)})
	mid, _ := base.Extend("Mid")
	leaf, _ := mid.Extend("Leaf")

	for _, typ := range []*Type{base, mid, leaf} {
		viaNew, err := typ.New("a", 2)
		if err != nil {
			t.Fatalf("%s.New: %v", typ, err)
		}
		viaCall, err := typ.Call("a", 2)
		if err != nil {
			t.Fatalf("%s.Call: %v", typ, err)
		}
		viaFactory, err := typ.Factory()("a", 2)
		if err != nil {
			t.Fatalf("%s.Factory(): %v", typ, err)
		}
		viaApply, err := typ.Apply(nil, "a", 2)
		if err != nil {
			t.Fatalf("%s.Apply(nil): %v", typ, err)
		}

		for _, inst := range []*object.Object{viaCall, viaFactory, viaApply} {
			if !reflect.DeepEqual(inst.OwnKeys(), viaNew.OwnKeys()) {
				t.Errorf("%s: own keys %v, want %v", typ, inst.OwnKeys(), viaNew.OwnKeys())
			}
			if !reflect.DeepEqual(inst.Get("args"), viaNew.Get("args")) {
				t.Errorf("%s: args %v, want %v", typ, inst.Get("args"), viaNew.Get("args"))
			}
			if TypeOf(inst) != typ || inst.Get(ConstructorKey) != typ {
				t.Errorf("%s: instance bound to %v", typ, TypeOf(inst))
			}
		}
	}
}

func TestInitializeFailurePropagatesUnchanged(t *testing.T) {
	boom := stderrors.New("boom")
	typ := mustDeclare(t, "Failing", nil, map[string]any{
		InitializeKey: object.Func(func(this *object.Object, args ...any) (any, error) {
			return nil, boom
		}),
	})

	inst, err := typ.New()
	if err != boom {
		t.Errorf("New error = %v, want the hook's error unchanged", err)
	}
	if inst != nil {
		t.Error("failed construction should not return an instance")
	}

	inst, err = typ.Call()
	if err != boom || inst != nil {
		t.Errorf("Call = %v, %v; want nil, boom", inst, err)
	}

	inst, err = typ.Apply(nil)
	if err != boom || inst != nil {
		t.Errorf("Apply(nil) = %v, %v; want nil, boom", inst, err)
	}
}

func TestNonCallableInitializeFails(t *testing.T) {
	typ := mustDeclare(t, "Weird", nil, map[string]any{InitializeKey: 5})

	for name, construct := range map[string]func(args ...any) (*object.Object, error){
		"New":  typ.New,
		"Call": typ.Call,
	} {
		inst, err := construct("x")
		if inst != nil {
			t.Errorf("%s returned an instance for a non-callable initialize", name)
		}
		var de *errors.DeclareError
		if !stderrors.As(err, &de) || de.Kind != errors.KindNotCallable {
			t.Fatalf("%s error = %v, want KindNotCallable", name, err)
		}
		var nc *errors.NotCallableError
		if !stderrors.As(err, &nc) || nc.Member != InitializeKey || nc.Got != 5 {
			t.Errorf("%s error = %v, want initialize reported as not callable", name, err)
		}
	}
}

func TestNilInitializeIsSkipped(t *testing.T) {
	typ := mustDeclare(t, "Blank", nil, object.New(nil).Put(InitializeKey, nil))
	inst, err := typ.New("x")
	if err != nil || inst == nil {
		t.Errorf("New = %v, %v; want a bare instance", inst, err)
	}
}

func TestInitializePanicPropagates(t *testing.T) {
	typ := mustDeclare(t, "Panicking", nil, map[string]any{
		InitializeKey: object.Func(func(this *object.Object, args ...any) (any, error) {
			panic("initialize panicked")
		}),
	})

	defer func() {
		if r := recover(); r != "initialize panicked" {
			t.Errorf("recover() = %v, want the hook's panic", r)
		}
	}()
	_, _ = typ.Call()
	t.Error("Call should not return")
}

func TestApplyChainsParentInitialize(t *testing.T) {
	var order []string

	widget := mustDeclare(t, "Widget", nil, map[string]any{
		InitializeKey: object.Func(func(this *object.Object, args ...any) (any, error) {
			order = append(order, "widget")
			this.Set("className", TypeOf(this).Name())
			return nil, nil
		}),
	})

	calendar, err := widget.Extend("Calendar", map[string]any{
		InitializeKey: object.Func(func(this *object.Object, args ...any) (any, error) {
			if _, err := widget.Apply(this, args...); err != nil {
				return nil, err
			}
			order = append(order, "calendar")
			this.Set("options", args[0])
			return nil, nil
		}),
	})
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	inst, err := calendar.Call("opts")
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if want := []string{"widget", "calendar"}; !reflect.DeepEqual(order, want) {
		t.Errorf("initialize order = %v, want %v", order, want)
	}
	if inst.Get("className") != "Calendar" {
		t.Errorf("className = %v, want Calendar", inst.Get("className"))
	}
	if inst.Get("options") != "opts" {
		t.Errorf("options = %v, want opts", inst.Get("options"))
	}
}

func TestApplyOnForeignReceiverConstructs(t *testing.T) {
	typ := mustDeclare(t, "T", nil, map[string]any{InitializeKey: object.Func(recordArgs)})
	foreign := object.New(nil)

	inst, err := typ.Apply(foreign, 1)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if inst == foreign {
		t.Error("a receiver that is not an instance should not be initialized")
	}
	if foreign.HasOwn("args") {
		t.Error("foreign receiver should be untouched")
	}
	if TypeOf(inst) != typ {
		t.Error("Apply should upgrade to a new instance")
	}
}

func TestInvokeReachesOverriddenMember(t *testing.T) {
	base := mustDeclare(t, "Base", nil, map[string]any{"describe": returns("base")})
	child, _ := base.Extend("Child", map[string]any{"describe": returns("child")})

	inst, _ := child.New()
	if got := mustCall(t, inst, "describe"); got != "child" {
		t.Errorf("describe() = %v, want child", got)
	}
	got, err := base.Invoke(inst, "describe")
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != "base" {
		t.Errorf("base.Invoke(describe) = %v, want base", got)
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	typ := mustDeclare(t, "T", nil, map[string]any{InitializeKey: object.Func(recordArgs)})
	a, _ := typ.New(1)
	b, _ := typ.New(2)
	if reflect.DeepEqual(a.Get("args"), b.Get("args")) {
		t.Error("instances should not share own state")
	}
	if typ.Prototype().HasOwn("args") {
		t.Error("initialize should write to the instance, not the contract")
	}
}
