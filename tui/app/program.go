package app

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/event"
	"github.com/grovetools/tzclock/tui/keymap"
	"github.com/grovetools/tzclock/tui/theme"
)

// keyDevice queues keys from the bubbletea loop for the event source.
// push never blocks, so the bubbletea loop keeps accepting frames while
// the controller is busy.
type keyDevice struct {
	mu     sync.Mutex
	queue  []tea.KeyMsg
	ready  chan struct{}
	closed chan struct{}
	err    error
	once   sync.Once
}

func newKeyDevice() *keyDevice {
	return &keyDevice{
		ready:  make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

func (d *keyDevice) push(msg tea.KeyMsg) {
	d.mu.Lock()
	d.queue = append(d.queue, msg)
	d.mu.Unlock()

	select {
	case d.ready <- struct{}{}:
	default:
	}
}

func (d *keyDevice) pop() (tea.KeyMsg, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.queue) == 0 {
		return tea.KeyMsg{}, false
	}
	msg := d.queue[0]
	d.queue = d.queue[1:]
	return msg, true
}

func (d *keyDevice) close(cause error) {
	d.once.Do(func() {
		d.err = cause
		close(d.closed)
	})
}

// Poll implements event.KeyPoller.
func (d *keyDevice) Poll(ctx context.Context, timeout time.Duration) (tea.KeyMsg, bool, error) {
	if msg, ok := d.pop(); ok {
		return msg, true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return tea.KeyMsg{}, false, ctx.Err()
		case <-d.closed:
			if msg, ok := d.pop(); ok {
				return msg, true, nil
			}
			return tea.KeyMsg{}, false, errors.TerminalUnavailable("terminal input closed").WithDetail("cause", d.err)
		case <-d.ready:
			if msg, ok := d.pop(); ok {
				return msg, true, nil
			}
		case <-timer.C:
			return tea.KeyMsg{}, false, nil
		}
	}
}

type frameMsg Frame

// model is the bubbletea side. It only stores the latest frame and the
// window width. Every decision is made by the Controller.
type model struct {
	device *keyDevice
	theme  *theme.Theme
	keys   keymap.KeyMap
	help   help.Model

	frame    Frame
	hasFrame bool
	width    int
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.device.push(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case frameMsg:
		m.frame = Frame(msg)
		m.hasFrame = true
	}
	return m, nil
}

func (m *model) View() string {
	if !m.hasFrame {
		return ""
	}
	return View(m.frame, ViewOptions{
		Width: m.width,
		Theme: m.theme,
		Keys:  m.keys,
		Help:  m.help,
	})
}

// Program is the bubbletea-backed Terminal. Its KeyPoller feeds an
// event.Source.
type Program struct {
	program *tea.Program
	device  *keyDevice
	done    chan struct{}
	err     error
}

// NewProgram creates the full-screen program. Signals are left to the
// caller's context.
func NewProgram(th *theme.Theme, keys keymap.KeyMap, opts ...tea.ProgramOption) *Program {
	if th == nil {
		th = theme.DefaultTheme
	}
	device := newKeyDevice()
	h := help.New()
	h.Styles.ShortKey = th.Key
	h.Styles.ShortDesc = th.Muted
	h.Styles.ShortSeparator = th.Muted

	m := &model{device: device, theme: th, keys: keys, help: h}
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}, opts...)

	return &Program{
		program: tea.NewProgram(m, opts...),
		device:  device,
		done:    make(chan struct{}),
	}
}

// Start runs the bubbletea loop in the background.
func (p *Program) Start() {
	go func() {
		_, err := p.program.Run()
		if err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
			p.err = errors.TerminalUnavailable(err.Error())
		}
		p.device.close(err)
		close(p.done)
	}()
}

// Poller returns the key source for event.NewSource.
func (p *Program) Poller() event.KeyPoller { return p.device }

// Render hands a frame to the bubbletea loop.
func (p *Program) Render(f Frame) error {
	select {
	case <-p.done:
		if p.err != nil {
			return p.err
		}
		return errors.TerminalUnavailable("terminal program exited")
	default:
	}
	p.program.Send(frameMsg(f))
	return nil
}

// Release stops the program and waits for the terminal to be restored.
func (p *Program) Release() error {
	p.program.Quit()
	<-p.done
	return p.err
}

// Done is closed once the program has exited.
func (p *Program) Done() <-chan struct{} { return p.done }
