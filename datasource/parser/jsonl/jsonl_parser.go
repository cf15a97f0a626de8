package jsonl

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/datasource"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	SliceSize     int  // The maximum number of rows per Slice. Defaults to 128.
	HeaderLines   int  // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Comment       rune // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces rows from JSONL data
type Parser struct {
	conf *ParserConf
}

var _ datasource.Parser = (*Parser)(nil)

// CreateParser returns a new JSONL Parser. Columns are parsed lazily from each row of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a Schema column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	c := &ParserConf{}
	if conf != nil {
		*c = *conf
	}
	if c.SliceSize == 0 {
		c.SliceSize = datasource.DefaultSliceSize
	}
	if c.MaxBufferSize == 0 {
		c.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: c}
}

// SliceSize returns the maximum size in rows of Slices produced by this Parser
func (p *Parser) SliceSize() int {
	return p.conf.SliceSize
}

// Parse parses JSONL data to produce rows
func (p *Parser) Parse(r io.Reader, schema ola.Schema) (datasource.RowReader, error) {
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	return func(s ola.BuildableSlice) error {
		rowString, err := p.nextLine(scanner)
		if err != nil {
			return err
		}
		values, err := parseJSONRow(colNames, colTypes, gjson.Parse(rowString))
		if err != nil {
			log.Printf("Unable to parse line:\n\t%s", rowString)
			return err
		}
		return s.AppendValues(values)
	}, nil
}

// nextLine returns the next line which is neither blank nor a comment
func (p *Parser) nextLine(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		if p.conf.Comment != 0 && strings.HasPrefix(trimmed, string(p.conf.Comment)) {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// CreateIterator returns a SliceIterator over JSONL data
func CreateIterator(r io.Reader, schema ola.Schema, conf *ParserConf) (ola.SliceIterator, error) {
	p := CreateParser(conf)
	read, err := p.Parse(r, schema)
	if err != nil {
		return nil, err
	}
	return datasource.CreateSliceIterator(p.SliceSize(), schema, read), nil
}
