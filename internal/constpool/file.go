package constpool

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"scriptir/internal/trace"
)

// Save writes p to path atomically: the data goes to a temp file in the
// same directory, which is then renamed over path.
func (p *Pool) Save(ctx context.Context, path string) (err error) {
	span, _ := trace.Start(ctx, trace.ScopeFile, "pool.save:"+filepath.Base(path))
	defer func() {
		if err != nil {
			span.End(err.Error())
			return
		}
		span.End("")
	}()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".pool-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	committed := false
	defer func() {
		if !committed {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := p.Encode(bw); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	committed = true

	st := p.Stats()
	span.WithExtra("names", strconv.Itoa(st.Names)).
		WithExtra("types", strconv.Itoa(st.Types)).
		WithExtra("consts", strconv.Itoa(st.Consts))
	return nil
}

// Load reads a pool file written by Save.
func Load(ctx context.Context, path string, opts Options) (*Pool, error) {
	span, _ := trace.Start(ctx, trace.ScopeFile, "pool.load:"+filepath.Base(path))

	f, err := os.Open(path)
	if err != nil {
		span.End(err.Error())
		return nil, err
	}
	defer f.Close()

	p, err := Decode(bufio.NewReader(f), opts)
	if err != nil {
		span.End(err.Error())
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	st := p.Stats()
	span.WithExtra("names", strconv.Itoa(st.Names)).
		WithExtra("types", strconv.Itoa(st.Types)).
		WithExtra("consts", strconv.Itoa(st.Consts)).
		End("")
	return p, nil
}

// LoadAll loads paths concurrently, at most jobs at a time (GOMAXPROCS when
// jobs <= 0). Results keep the order of paths. The first failure cancels
// the remaining loads and is returned.
func LoadAll(ctx context.Context, paths []string, opts Options, jobs int) ([]*Pool, error) {
	return loadAll(ctx, paths, opts, jobs, nil)
}

// LoadAllProgress is LoadAll that reports per-file status on events.
// events is closed when the call returns.
func LoadAllProgress(ctx context.Context, paths []string, opts Options, jobs int, events chan<- LoadEvent) ([]*Pool, error) {
	defer close(events)
	return loadAll(ctx, paths, opts, jobs, events)
}

func loadAll(ctx context.Context, paths []string, opts Options, jobs int, events chan<- LoadEvent) ([]*Pool, error) {
	span, ctx := trace.Start(ctx, trace.ScopePass, "pool.load_all")
	defer span.WithExtra("files", strconv.Itoa(len(paths))).End("")

	if len(paths) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	notify := func(path string, status LoadStatus) {
		if events != nil {
			events <- LoadEvent{Path: path, Status: status}
		}
	}
	for _, path := range paths {
		notify(path, LoadQueued)
	}

	pools := make([]*Pool, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				notify(path, LoadCanceled)
				return gctx.Err()
			default:
			}
			notify(path, LoadReading)
			p, err := Load(gctx, path, opts)
			if err != nil {
				notify(path, LoadFailed)
				return err
			}
			pools[i] = p
			notify(path, LoadDone)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pools, nil
}
