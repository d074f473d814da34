package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

type memoryCatalog struct {
	mu      sync.Mutex
	ids     []domain.ProblemID
	solved  map[domain.ProblemID]bool
	marks   []domain.ProblemID
	lists   int
	listErr error
}

func newMemoryCatalog(ids ...domain.ProblemID) *memoryCatalog {
	return &memoryCatalog{ids: ids, solved: map[domain.ProblemID]bool{}}
}

func (c *memoryCatalog) ListAll(ctx context.Context) ([]domain.ProblemID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists++
	if c.listErr != nil {
		return nil, c.listErr
	}
	return append([]domain.ProblemID(nil), c.ids...), nil
}

func (c *memoryCatalog) IsSolved(ctx context.Context, id domain.ProblemID) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.solved[id], nil
}

func (c *memoryCatalog) MarkSolved(ctx context.Context, id domain.ProblemID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.marks = append(c.marks, id)
	c.solved[id] = true
	return nil
}

func (c *memoryCatalog) AddProblem(ctx context.Context, id domain.ProblemID) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.ids {
		if existing == id {
			return false, nil
		}
	}
	c.ids = append(c.ids, id)
	return true, nil
}

func (c *memoryCatalog) ListSolved(ctx context.Context) ([]domain.ProblemID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ProblemID, 0, len(c.solved))
	for id := range c.solved {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

type verdictRead struct {
	text string
	err  error
}

type scriptedDriver struct {
	solvedOnPage map[domain.ProblemID]bool
	premium      map[domain.ProblemID]bool
	injectErr    map[domain.ProblemID]error
	submitErr    map[domain.ProblemID]error
	verdicts     map[domain.ProblemID][]verdictRead

	touched  []domain.ProblemID
	injected map[domain.ProblemID]string
	reads    map[domain.ProblemID]int
	onSubmit func(domain.ProblemID)
}

func newScriptedDriver() *scriptedDriver {
	return &scriptedDriver{
		solvedOnPage: map[domain.ProblemID]bool{},
		premium:      map[domain.ProblemID]bool{},
		injectErr:    map[domain.ProblemID]error{},
		submitErr:    map[domain.ProblemID]error{},
		verdicts:     map[domain.ProblemID][]verdictRead{},
		injected:     map[domain.ProblemID]string{},
		reads:        map[domain.ProblemID]int{},
	}
}

func (d *scriptedDriver) touch(id domain.ProblemID) {
	if len(d.touched) == 0 || d.touched[len(d.touched)-1] != id {
		d.touched = append(d.touched, id)
	}
}

func (d *scriptedDriver) IsAlreadySolved(ctx context.Context, id domain.ProblemID) (bool, error) {
	d.touch(id)
	return d.solvedOnPage[id], nil
}

func (d *scriptedDriver) IsPremiumLocked(ctx context.Context, id domain.ProblemID) (bool, error) {
	d.touch(id)
	return d.premium[id], nil
}

func (d *scriptedDriver) InjectCode(ctx context.Context, id domain.ProblemID, source string, lang domain.Language) error {
	d.touch(id)
	d.injected[id] = source
	return d.injectErr[id]
}

func (d *scriptedDriver) Submit(ctx context.Context, id domain.ProblemID) error {
	d.touch(id)
	if d.onSubmit != nil {
		d.onSubmit(id)
	}
	return d.submitErr[id]
}

func (d *scriptedDriver) ReadVerdict(ctx context.Context, id domain.ProblemID) (string, error) {
	d.touch(id)
	n := d.reads[id]
	d.reads[id] = n + 1

	script, ok := d.verdicts[id]
	if !ok {
		return "Accepted", nil
	}
	if n >= len(script) {
		return "", nil
	}
	return script[n].text, script[n].err
}

type scriptedGenerator struct {
	initErr error
	errs    map[domain.ProblemID][]error
	resolve map[int]domain.ProblemID
	calls   map[domain.ProblemID]int
}

func newScriptedGenerator() *scriptedGenerator {
	return &scriptedGenerator{
		errs:    map[domain.ProblemID][]error{},
		resolve: map[int]domain.ProblemID{},
		calls:   map[domain.ProblemID]int{},
	}
}

func (g *scriptedGenerator) Initialize(ctx context.Context) error {
	return g.initErr
}

func (g *scriptedGenerator) Generate(ctx context.Context, id domain.ProblemID, lang domain.Language) (string, error) {
	n := g.calls[id]
	g.calls[id] = n + 1
	if errs := g.errs[id]; n < len(errs) && errs[n] != nil {
		return "", errs[n]
	}
	return "class Solution { /* " + string(id) + " */ }", nil
}

func (g *scriptedGenerator) ResolveNameFromNumber(ctx context.Context, number int) (domain.ProblemID, error) {
	id, ok := g.resolve[number]
	if !ok {
		return "", domain.ErrProblemNotFound
	}
	return id, nil
}

type recordingSleeper struct {
	waits []time.Duration
	err   error
	hook  func(time.Duration)
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	if s.hook != nil {
		s.hook(d)
	}
	if s.err != nil {
		return s.err
	}
	return ctx.Err()
}

type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

type recordingProgress struct {
	events []domain.ProgressEvent
	hook   func(domain.ProgressEvent)
}

func (r *recordingProgress) Progress(event domain.ProgressEvent) {
	r.events = append(r.events, event)
	if r.hook != nil {
		r.hook(event)
	}
}

func (r *recordingProgress) messages() []string {
	out := make([]string, 0, len(r.events))
	for _, event := range r.events {
		out = append(out, event.Message)
	}
	return out
}

type recordingAudit struct {
	entries []domain.AuditEntry
}

func (r *recordingAudit) Audit(entry domain.AuditEntry) {
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) tags() []string {
	out := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry.Tag)
	}
	return out
}
