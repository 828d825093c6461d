package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/marketlens/marketlens/internal/cloudwriter"
	"github.com/marketlens/marketlens/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
	"github.com/xuri/excelize/v2"
)

// Sink writes a set of reports somewhere.
type Sink interface {
	WriteReports(reports []Report) error
}

type CSVSink struct {
	basePath string
	folder   string
}

type JSONSink struct {
	basePath string
	folder   string
}

type XLSXSink struct {
	basePath string
	folder   string
}

type ParquetSink struct {
	basePath     string
	folder       string
	cloudFactory cloudwriter.Factory
	bucketName   string
}

func NewCSVSink(basePath, folder string) *CSVSink {
	return &CSVSink{basePath: basePath, folder: folder}
}

func NewJSONSink(basePath, folder string) *JSONSink {
	return &JSONSink{basePath: basePath, folder: folder}
}

func NewXLSXSink(basePath, folder string) *XLSXSink {
	return &XLSXSink{basePath: basePath, folder: folder}
}

func NewParquetSink(ctx context.Context, config *models.Config) (*ParquetSink, error) {
	p := &ParquetSink{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
	}

	if config.OutputDestination != "local" {
		switch config.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3WriterFactory(ctx, config.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			p.cloudFactory = factory
			p.bucketName = config.CloudStorage.BucketName
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
	}

	return p, nil
}

// NewSink picks the sink for the configured output format.
func NewSink(ctx context.Context, config *models.Config) (Sink, error) {
	switch config.OutputFormat {
	case "csv":
		return NewCSVSink(config.OutputPath, config.OutputFolder), nil
	case "json":
		return NewJSONSink(config.OutputPath, config.OutputFolder), nil
	case "xlsx":
		return NewXLSXSink(config.OutputPath, config.OutputFolder), nil
	case "parquet":
		return NewParquetSink(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}
}

func (s *CSVSink) WriteReports(reports []Report) error {
	dir := filepath.Join(s.basePath, s.folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	for _, report := range reports {
		file, err := os.Create(filepath.Join(dir, report.Name+".csv"))
		if err != nil {
			return err
		}
		if err := writeCSV(file, report); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, report Report) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(report.Headers); err != nil {
		return err
	}
	for _, row := range report.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		if err := csvWriter.Write(cells); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func (s *JSONSink) WriteReports(reports []Report) error {
	dir := filepath.Join(s.basePath, s.folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	for _, report := range reports {
		file, err := os.Create(filepath.Join(dir, report.Name+".json"))
		if err != nil {
			return err
		}
		if err := writeJSON(file, report); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, report Report) error {
	rows := make([]map[string]interface{}, 0, len(report.Rows))
	for _, row := range report.Rows {
		obj := make(map[string]interface{}, len(report.Headers))
		for i, header := range report.Headers {
			if i < len(row) {
				obj[header] = row[i]
			}
		}
		rows = append(rows, obj)
	}
	enc := json.NewEncoder(w)
	return enc.Encode(rows)
}

func (s *XLSXSink) WriteReports(reports []Report) error {
	dir := filepath.Join(s.basePath, s.folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	book := excelize.NewFile()
	defer book.Close()

	for i, report := range reports {
		sheet := report.Name
		if i == 0 {
			if err := book.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else {
			if _, err := book.NewSheet(sheet); err != nil {
				return err
			}
		}

		header := make([]interface{}, len(report.Headers))
		for col, h := range report.Headers {
			header[col] = h
		}
		if err := book.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		for rowIdx, row := range report.Rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := book.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}
	}

	return book.SaveAs(filepath.Join(dir, "market_report.xlsx"))
}

func (s *ParquetSink) WriteReports(reports []Report) error {
	for _, report := range reports {
		objectPath := filepath.Join(s.folder, report.Name+".parquet")

		var fw source.ParquetFile
		var err error
		if s.cloudFactory != nil {
			cw, err := s.cloudFactory.NewWriter(s.bucketName, objectPath)
			if err != nil {
				return fmt.Errorf("failed to create cloud file writer: %w", err)
			}
			fw = newCloudParquetFile(cw)
		} else {
			dir := filepath.Join(s.basePath, s.folder)
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return err
			}
			fw, err = local.NewLocalFileWriter(filepath.Join(dir, report.Name+".parquet"))
			if err != nil {
				return fmt.Errorf("failed to create local file writer: %w", err)
			}
		}

		pw, err := writer.NewParquetWriter(fw, report.Schema, 4)
		if err != nil {
			fw.Close()
			return fmt.Errorf("failed to create parquet writer: %w", err)
		}
		for _, record := range report.Records {
			if err := pw.Write(record); err != nil {
				fw.Close()
				return fmt.Errorf("failed to write record: %w", err)
			}
		}
		if err := pw.WriteStop(); err != nil {
			fw.Close()
			return err
		}
		if err := fw.Close(); err != nil {
			return err
		}
	}
	return nil
}

// cloudParquetFile adapts a cloudwriter.Writer to the parquet source
// interface. Reports are written once, front to back; seeking and reading
// are not supported.
type cloudParquetFile struct {
	cloudWriter cloudwriter.Writer
	offset      int64
}

func newCloudParquetFile(w cloudwriter.Writer) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: w}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (int, error) {
	return c.cloudWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
