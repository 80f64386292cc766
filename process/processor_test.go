package process_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/mpontes/fatura"
	"github.com/mpontes/fatura/mock"
	"github.com/mpontes/fatura/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invoicePage = `ENEL DISTRIBUIÇÃO
Instalação
12345678 / 1234567890123
Vencimento 15/03/2024
Fatura referente a 02/2024
EN CONSUMIDA FAT TU KWH 100,50
EN FORNECIDA TU KWH 20,25
RET. ART. 64 LEI 9430 - 1,20% 100,00 50,00 -12,34
TOTAL A PAGAR R$ 1.234,56
`

// collectWriter records everything written to it.
type collectWriter struct {
	headers int
	rows    [][]string
	flushed bool
}

func (w *collectWriter) writer() *mock.RecordWriter {
	return &mock.RecordWriter{
		WriteHeaderFn: func(ctx context.Context) error {
			w.headers++
			return nil
		},
		WriteRecordFn: func(ctx context.Context, rec *fatura.Record) error {
			w.rows = append(w.rows, rec.Row())
			return nil
		},
		FlushFn: func() error {
			w.flushed = true
			return nil
		},
	}
}

func TestProcessor_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts all fields from an invoice page", func(t *testing.T) {
		t.Parallel()

		var out collectWriter
		p := &process.Processor{
			Reader: mock.Pages(invoicePage),
			Writer: out.writer(),
		}

		result, err := p.Run(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, &process.Result{Pages: 1, Emitted: 1}, result)
		assert.Equal(t, 1, out.headers)
		assert.True(t, out.flushed)
		require.Len(t, out.rows, 1)
		assert.Equal(t, []string{"1", "12345678", "02/2024", "120,75", "1.234,56", "12,34"}, out.rows[0])
	})

	t.Run("skips empty and non-invoice pages", func(t *testing.T) {
		t.Parallel()

		var out collectWriter
		p := &process.Processor{
			Reader: mock.Pages("", "manual de instruções página 2", invoicePage),
			Writer: out.writer(),
		}

		result, err := p.Run(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, &process.Result{Pages: 3, Emitted: 1, Skipped: 2}, result)
		require.Len(t, out.rows, 1)
		assert.Equal(t, "3", out.rows[0][0], "page numbers follow the source document")
	})

	t.Run("accepted page with no extractable fields still emits a row", func(t *testing.T) {
		t.Parallel()

		var out collectWriter
		p := &process.Processor{
			Reader: mock.Pages("instalação e vencimento"),
			Writer: out.writer(),
		}

		result, err := p.Run(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Emitted)
		require.Len(t, out.rows, 1)
		assert.Equal(t, []string{"1", "", "", "", "", "0,00"}, out.rows[0])
	})

	t.Run("reruns produce identical rows", func(t *testing.T) {
		t.Parallel()

		run := func() [][]string {
			var out collectWriter
			p := &process.Processor{
				Reader: mock.Pages(invoicePage, "", invoicePage),
				Writer: out.writer(),
			}
			_, err := p.Run(context.Background(), nil)
			require.NoError(t, err)
			return out.rows
		}

		assert.Equal(t, run(), run())
	})

	t.Run("concurrent extraction keeps ascending page order", func(t *testing.T) {
		t.Parallel()

		pages := make([]string, 24)
		for i := range pages {
			account := strconv.Itoa(80000000 + i)
			pages[i] = "Instalação " + account + " Vencimento 10/01/2024 referente 01/2024"
		}

		var out collectWriter
		p := &process.Processor{
			Reader:      mock.Pages(pages...),
			Writer:      out.writer(),
			Concurrency: 4,
		}

		result, err := p.Run(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, 24, result.Emitted)
		require.Len(t, out.rows, 24)
		for i, row := range out.rows {
			assert.Equal(t, strconv.Itoa(i+1), row[0])
			assert.Equal(t, strconv.Itoa(80000000+i), row[1])
		}
	})

	t.Run("persists emitted records when a record service is set", func(t *testing.T) {
		t.Parallel()

		var persisted []*fatura.Record
		var out collectWriter
		p := &process.Processor{
			Reader: mock.Pages(invoicePage, ""),
			Writer: out.writer(),
			Source: "enel_filtrado.pdf",
			Records: &mock.RecordService{
				CreateRecordFn: func(ctx context.Context, rec *fatura.Record) error {
					persisted = append(persisted, rec)
					return nil
				},
			},
		}

		_, err := p.Run(context.Background(), nil)
		require.NoError(t, err)

		require.Len(t, persisted, 1)
		assert.Equal(t, "enel_filtrado.pdf", persisted[0].Source)
		assert.Equal(t, "12345678", persisted[0].AccountID)
		assert.NotEmpty(t, persisted[0].PageHash)
	})

	t.Run("reader failure aborts the run", func(t *testing.T) {
		t.Parallel()

		var out collectWriter
		p := &process.Processor{
			Reader: &mock.PageReader{
				PageCountFn: func() int { return 1 },
				PageTextFn: func(pageNum int) (string, error) {
					return "", errors.New("corrupt xref table")
				},
			},
			Writer: out.writer(),
		}

		_, err := p.Run(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		var events []process.ProgressType
		var out collectWriter
		p := &process.Processor{
			Reader: mock.Pages(invoicePage, ""),
			Writer: out.writer(),
		}

		_, err := p.Run(context.Background(), func(e process.ProgressEvent) {
			events = append(events, e.Type)
		})
		require.NoError(t, err)

		assert.Equal(t, []process.ProgressType{
			process.ProgressStarted,
			process.ProgressEmitted,
			process.ProgressSkipped,
			process.ProgressFinished,
		}, events)
	})
}
