package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/datasource"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	SliceSize   int    // The maximum number of rows per Slice. Defaults to 128.
	HeaderLines int    // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Delimiter   rune   // The delimiter separating columns in the file. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
}

// Parser produces rows from DSV data
type Parser struct {
	conf *ParserConf
}

var _ datasource.Parser = (*Parser)(nil)

// CreateParser returns a new DSV Parser. Columns are matched to the Schema by position.
func CreateParser(conf *ParserConf) *Parser {
	c := &ParserConf{}
	if conf != nil {
		*c = *conf
	}
	if c.SliceSize == 0 {
		c.SliceSize = datasource.DefaultSliceSize
	}
	if c.Delimiter == 0 {
		c.Delimiter = ','
	}
	return &Parser{conf: c}
}

// SliceSize returns the maximum size in rows of Slices produced by this Parser
func (p *Parser) SliceSize() int {
	return p.conf.SliceSize
}

// Parse parses DSV data to produce rows
func (p *Parser) Parse(r io.Reader, schema ola.Schema) (datasource.RowReader, error) {
	// start parsing by creating a reader
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = schema.NumColumns()
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		_, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
	}

	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	return func(s ola.BuildableSlice) error {
		rowStrings, err := reader.Read()
		if err != nil {
			return err
		}
		values, err := scanRow(p.conf, colNames, colTypes, rowStrings)
		if err != nil {
			return err
		}
		return s.AppendValues(values)
	}, nil
}

// CreateIterator returns a SliceIterator over DSV data
func CreateIterator(r io.Reader, schema ola.Schema, conf *ParserConf) (ola.SliceIterator, error) {
	p := CreateParser(conf)
	read, err := p.Parse(r, schema)
	if err != nil {
		return nil, err
	}
	return datasource.CreateSliceIterator(p.SliceSize(), schema, read), nil
}
