package web

import (
	"net/url"

	domain "github.com/example/task-board/domain/task"
	"github.com/gofiber/fiber/v2"
)

// pageState is the UI state kept in the page URL: whether the creation form
// is open and which items are in edit mode.
type pageState struct {
	New  bool
	Edit []string
}

func parsePageState(c *fiber.Ctx) pageState {
	var s pageState
	args := c.Context().QueryArgs()
	s.New = string(args.Peek("new")) == "1"
	for _, id := range args.PeekMulti("edit") {
		s = s.withEdit(string(id))
	}
	return s
}

func (s pageState) editing(id string) bool {
	for _, e := range s.Edit {
		if e == id {
			return true
		}
	}
	return false
}

func (s pageState) withNew(open bool) pageState {
	s.Edit = append([]string(nil), s.Edit...)
	s.New = open
	return s
}

func (s pageState) withEdit(id string) pageState {
	if id == "" || s.editing(id) {
		return s
	}
	s.Edit = append(append([]string(nil), s.Edit...), id)
	return s
}

func (s pageState) withoutEdit(id string) pageState {
	out := pageState{New: s.New}
	for _, e := range s.Edit {
		if e != id {
			out.Edit = append(out.Edit, e)
		}
	}
	return out
}

// retain drops edit ids that no longer name a task.
func (s pageState) retain(tasks []domain.Task) pageState {
	out := pageState{New: s.New}
	for _, t := range tasks {
		if s.editing(t.ID) {
			out.Edit = append(out.Edit, t.ID)
		}
	}
	return out
}

// url returns path with the state encoded as its query.
func (s pageState) url(path string) string {
	v := url.Values{}
	if s.New {
		v.Set("new", "1")
	}
	for _, id := range s.Edit {
		v.Add("edit", id)
	}
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

type pageData struct {
	NewTaskHref string
	CreateForm  *formData
	Items       []itemData
}

type formData struct {
	*TaskForm
	Action string
}

type itemData struct {
	*TaskItem
	Form         *formData
	EditHref     string
	ToggleAction string
	DeleteAction string
}

// buildPage lays out the board for state. createForm is shown only while the
// state has the creation form open.
func buildPage(state pageState, items []*TaskItem, createForm *TaskForm) pageData {
	data := pageData{
		NewTaskHref: state.withNew(true).url("/"),
		Items:       make([]itemData, 0, len(items)),
	}
	if state.New && createForm != nil {
		data.CreateForm = &formData{TaskForm: createForm, Action: state.url("/tasks")}
	}
	for _, item := range items {
		id := url.PathEscape(item.Task.ID)
		d := itemData{
			TaskItem:     item,
			EditHref:     state.withEdit(item.Task.ID).url("/"),
			ToggleAction: state.url("/tasks/" + id + "/toggle"),
			DeleteAction: state.url("/tasks/" + id + "/delete"),
		}
		if item.Editing && item.Form != nil {
			d.Form = &formData{TaskForm: item.Form, Action: state.url("/tasks/" + id)}
		}
		data.Items = append(data.Items, d)
	}
	return data
}
