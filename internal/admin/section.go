package admin

import (
	"context"

	"github.com/designfolio/internal/action"
	"github.com/designfolio/internal/admin/controller"
	"github.com/designfolio/internal/service"
)

// FieldKind tells the editor template which input to render and the parser
// how to read it back.
type FieldKind string

const (
	FieldText      FieldKind = "text"
	FieldTextarea  FieldKind = "textarea"
	FieldEmail     FieldKind = "email"
	FieldURL       FieldKind = "url"
	FieldImage     FieldKind = "image"
	FieldIcon      FieldKind = "icon"
	FieldCommaList FieldKind = "comma-list"
	FieldLineList  FieldKind = "line-list"
	FieldNumber    FieldKind = "number"
)

// Field describes one editor input.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Hint     string
}

// Meta describes a section for navigation and rendering.
type Meta struct {
	Key       string
	Title     string
	Singleton bool
	Orderable bool
	Fields    []Field
}

// Row is a list entry as the admin page shows it.
type Row struct {
	ID       uint
	Title    string
	Subtitle string
	Image    string
	Icon     string
}

// PageRequest carries the modal query: ?new=1 or ?edit=<id>.
type PageRequest struct {
	New    bool
	EditID uint
}

// Page is everything the section template needs.
type Page struct {
	Meta
	Phase     controller.Phase
	Rows      []Row
	ModalOpen bool
	Editing   bool
	EditID    uint
	Values    Form
}

// Section is the type-erased view of a descriptor that handlers route to.
type Section interface {
	Meta() Meta
	Page(ctx context.Context, a *action.Actions, n controller.Notifier, req PageRequest) (Page, error)
	Submit(ctx context.Context, a *action.Actions, n controller.Notifier, id uint, form Form) (Page, action.Result)
	Delete(ctx context.Context, a *action.Actions, n controller.Notifier, id uint) action.Result
	Move(ctx context.Context, a *action.Actions, id uint, dir service.Direction) action.Result
	Reorder(ctx context.Context, a *action.Actions, ids []uint) action.Result
	Items(ctx context.Context, a *action.Actions) (any, error)
	Create(ctx context.Context, a *action.Actions, form Form) action.Result
	Update(ctx context.Context, a *action.Actions, id uint, form Form) action.Result
}

// Descriptor binds one entity type to its form, list rendering and
// mutations.
type Descriptor[T, In any] struct {
	meta     Meta
	messages controller.Messages

	list    func(*service.Set) ([]T, error)
	id      func(*T) uint
	row     func(*T) Row
	values  func(*T) Form
	parse   func(Form) (In, error)
	create  func(context.Context, *action.Actions, In) action.Result
	update  func(context.Context, *action.Actions, uint, In) action.Result
	remove  func(context.Context, *action.Actions, uint) action.Result
	move    func(context.Context, *action.Actions, uint, service.Direction) action.Result
	reorder func(context.Context, *action.Actions, []uint) action.Result
}

func (d *Descriptor[T, In]) Meta() Meta {
	meta := d.meta
	meta.Orderable = d.move != nil
	return meta
}

type backend[T, In any] struct {
	d *Descriptor[T, In]
	a *action.Actions
}

func (b backend[T, In]) Fetch(context.Context) ([]T, error) {
	return b.d.list(b.a.Services())
}

func (b backend[T, In]) Create(ctx context.Context, input In) action.Result {
	return b.d.create(ctx, b.a, input)
}

func (b backend[T, In]) Update(ctx context.Context, item *T, input In) action.Result {
	return b.d.update(ctx, b.a, b.d.id(item), input)
}

func (b backend[T, In]) Delete(ctx context.Context, item *T) action.Result {
	if b.d.remove == nil {
		return action.Fail(action.KindValidation, "Esta seção não pode ser excluída")
	}
	return b.d.remove(ctx, b.a, b.d.id(item))
}

func (d *Descriptor[T, In]) controller(a *action.Actions, n controller.Notifier) *controller.Controller[T, In] {
	return controller.New[T, In](backend[T, In]{d: d, a: a}, n, nil, d.messages)
}

func (d *Descriptor[T, In]) find(items []T, id uint) *T {
	for i := range items {
		if d.id(&items[i]) == id {
			return &items[i]
		}
	}
	return nil
}

// Page mounts a controller and opens the modal the request asks for.
// Singletons always show their form.
func (d *Descriptor[T, In]) Page(ctx context.Context, a *action.Actions, n controller.Notifier, req PageRequest) (Page, error) {
	c := d.controller(a, n)
	if err := c.Mount(ctx); err != nil {
		return Page{}, err
	}

	switch {
	case d.meta.Singleton:
		d.openSingleton(c)
	case req.EditID > 0:
		if item := d.find(c.Items(), req.EditID); item != nil {
			c.OpenEdit(item)
		} else {
			n.Error("Registro não encontrado")
		}
	case req.New:
		c.OpenCreate()
	}

	return d.page(c, nil), nil
}

func (d *Descriptor[T, In]) openSingleton(c *controller.Controller[T, In]) {
	if items := c.Items(); len(items) > 0 {
		c.OpenEdit(&items[0])
		return
	}
	c.OpenCreate()
}

// Submit creates or updates from a posted form. On failure the returned
// page keeps the modal open with what the operator typed.
func (d *Descriptor[T, In]) Submit(ctx context.Context, a *action.Actions, n controller.Notifier, id uint, form Form) (Page, action.Result) {
	c := d.controller(a, n)
	if err := c.Mount(ctx); err != nil {
		return Page{}, action.Fail(action.KindPersistence, d.messages.LoadError)
	}

	switch {
	case d.meta.Singleton:
		d.openSingleton(c)
	case id > 0:
		item := d.find(c.Items(), id)
		if item == nil {
			res := action.Fail(action.KindNotFound, "Registro não encontrado")
			n.Error(res.Error)
			return d.page(c, nil), res
		}
		c.OpenEdit(item)
	default:
		c.OpenCreate()
	}

	input, err := d.parse(form)
	if err != nil {
		res := action.FromValidation(err)
		n.Error(res.Error)
		return d.page(c, form), res
	}

	res := c.Submit(ctx, input)
	if !res.Success {
		return d.page(c, form), res
	}
	return d.page(c, nil), res
}

// Delete removes the row with id after the operator confirmed it.
func (d *Descriptor[T, In]) Delete(ctx context.Context, a *action.Actions, n controller.Notifier, id uint) action.Result {
	c := d.controller(a, n)
	if err := c.Mount(ctx); err != nil {
		return action.Fail(action.KindPersistence, d.messages.LoadError)
	}
	item := d.find(c.Items(), id)
	if item == nil {
		res := action.Fail(action.KindNotFound, "Registro não encontrado")
		n.Error(res.Error)
		return res
	}
	res, _ := c.Delete(ctx, item, true)
	return res
}

func (d *Descriptor[T, In]) Move(ctx context.Context, a *action.Actions, id uint, dir service.Direction) action.Result {
	if d.move == nil {
		return action.Fail(action.KindValidation, "Esta seção não pode ser reordenada")
	}
	return d.move(ctx, a, id, dir)
}

// Reorder applies a full ordering of ids.
func (d *Descriptor[T, In]) Reorder(ctx context.Context, a *action.Actions, ids []uint) action.Result {
	if d.reorder == nil {
		return action.Fail(action.KindValidation, "Esta seção não pode ser reordenada")
	}
	if len(ids) == 0 {
		return action.Fail(action.KindValidation, "Dados inválidos: ids é obrigatório")
	}
	return d.reorder(ctx, a, ids)
}

// Items returns the raw rows for the JSON API. Singletons return the row
// or nil.
func (d *Descriptor[T, In]) Items(_ context.Context, a *action.Actions) (any, error) {
	items, err := d.list(a.Services())
	if err != nil {
		return nil, err
	}
	if d.meta.Singleton {
		if len(items) == 0 {
			return nil, nil
		}
		return items[0], nil
	}
	return items, nil
}

func (d *Descriptor[T, In]) Create(ctx context.Context, a *action.Actions, form Form) action.Result {
	input, err := d.parse(form)
	if err != nil {
		return action.FromValidation(err)
	}
	return d.create(ctx, a, input)
}

func (d *Descriptor[T, In]) Update(ctx context.Context, a *action.Actions, id uint, form Form) action.Result {
	input, err := d.parse(form)
	if err != nil {
		return action.FromValidation(err)
	}
	return d.update(ctx, a, id, input)
}

func (d *Descriptor[T, In]) page(c *controller.Controller[T, In], typed Form) Page {
	items := c.Items()
	rows := make([]Row, 0, len(items))
	for i := range items {
		row := d.row(&items[i])
		row.ID = d.id(&items[i])
		rows = append(rows, row)
	}

	page := Page{Meta: d.Meta(), Phase: c.Phase(), Rows: rows, Values: Form{}}
	modal := c.Modal()
	if !modal.IsOpen() {
		return page
	}

	page.ModalOpen = true
	page.Editing = modal.Editing()
	if data := modal.Data(); data != nil {
		page.EditID = d.id(data)
		page.Values = d.values(data)
	}
	if typed != nil {
		page.Values = typed
	}
	return page
}
