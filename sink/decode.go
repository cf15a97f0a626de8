package sink

import (
	"encoding/json"
	"io"
)

func decodeRecords(r io.Reader) ([]*Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	records := []*Record{}
	for {
		var rec Record
		err := dec.Decode(&rec)
		if err == io.EOF {
			return records, nil
		} else if err != nil {
			return nil, err
		}
		for i, l := range rec.Labels {
			if n, ok := l.(json.Number); ok {
				rec.Labels[i] = normalizeNumber(n)
			}
		}
		records = append(records, &rec)
	}
}

// normalizeNumber restores integral labels as int64 and others as float64
func normalizeNumber(n json.Number) interface{} {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
