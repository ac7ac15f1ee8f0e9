package render

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/mrsinham/gradientforge/internal/gradient"
)

// Options contains all parameters for generating one or more gradient
// images.
type Options struct {
	Size  gradient.Size
	Init  gradient.PixelInit
	Noise gradient.NoiseOptions

	// Output is the image path. With Count > 1 a numeric suffix is
	// inserted before the extension (art.bmp -> art_001.bmp).
	Output string
	// Count is the number of images to generate. Zero means one.
	Count int
	// Label draws an "Image X/Y" overlay on each image.
	Label bool
	// Workers caps the render workers. Zero means one per CPU.
	Workers int

	// Quiet suppresses progress output on stdout.
	Quiet bool
	// ProgressCallback, when set, is called after each completed
	// image with the running count, the total and the file path.
	ProgressCallback func(current, total int, path string)
}

// GeneratedFile describes one written image.
type GeneratedFile struct {
	Path  string
	Seed  int32
	Bytes int64
}

// imageTask holds everything needed to render one output file.
type imageTask struct {
	index int // 1-based
	path  string
	seed  int32
	label string
}

// Generate renders Count images and writes them to disk. All tasks
// are laid out sequentially first so paths and per-image seeds stay
// deterministic regardless of worker scheduling, then rendered by a
// worker pool. The first error aborts the run.
func Generate(opts Options) ([]GeneratedFile, error) {
	if opts.Output == "" {
		return nil, fmt.Errorf("output path is required")
	}
	count := opts.Count
	if count < 0 {
		return nil, fmt.Errorf("count must be >= 1, got %d", opts.Count)
	}
	if count == 0 {
		count = 1
	}

	// Phase 1: build all tasks up front.
	tasks := make([]imageTask, count)
	for i := 1; i <= count; i++ {
		seed := opts.Noise.Seed
		path := opts.Output
		if count > 1 {
			seed = deriveSeed(opts.Noise.Seed, i)
			path = numberedPath(opts.Output, i)
		}
		tasks[i-1] = imageTask{
			index: i,
			path:  path,
			seed:  seed,
			label: fmt.Sprintf("Image %d/%d", i, count),
		}
	}

	// Phase 2: render in parallel.
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}

	taskChan := make(chan imageTask, len(tasks))
	resultChan := make(chan taskResult, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				bytes, err := renderTask(opts, task)
				resultChan <- taskResult{index: task.index, path: task.path, bytes: bytes, err: err}
			}
		}()
	}

	for _, task := range tasks {
		taskChan <- task
	}
	close(taskChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	bytesByIndex := make([]int64, len(tasks))
	completed := 0
	var firstErr error
	for result := range resultChan {
		if result.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("generate image %d: %w", result.index, result.err)
		}
		bytesByIndex[result.index-1] = result.bytes
		completed++

		if opts.ProgressCallback != nil {
			opts.ProgressCallback(completed, len(tasks), result.path)
		}
		if !opts.Quiet && len(tasks) > 1 && (completed%10 == 0 || completed == len(tasks)) {
			fmt.Printf("  Progress: %d/%d images\n", completed, len(tasks))
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	files := make([]GeneratedFile, len(tasks))
	for i, task := range tasks {
		files[i] = GeneratedFile{Path: task.path, Seed: task.seed, Bytes: bytesByIndex[i]}
	}

	return files, nil
}

type taskResult struct {
	index int
	path  string
	bytes int64
	err   error
}

func renderTask(opts Options, task imageTask) (int64, error) {
	img, err := gradient.GenerateImage(opts.Size, opts.Init, gradient.NoiseOptions{
		Seed:      task.seed,
		Frequency: opts.Noise.Frequency,
	})
	if err != nil {
		return 0, err
	}

	if opts.Label {
		if err := DrawLabel(img, task.label); err != nil {
			return 0, fmt.Errorf("draw label: %w", err)
		}
	}

	return SaveImage(img, task.path)
}

// deriveSeed produces a distinct per-image seed from the base seed so
// batches stay reproducible from a single seed.
func deriveSeed(seed int32, index int) int32 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d_image_%d", seed, index)
	return int32(h.Sum64())
}

// numberedPath inserts a zero-padded index before the extension:
// art.bmp -> art_001.bmp.
func numberedPath(path string, index int) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%03d%s", base, index, ext)
}
