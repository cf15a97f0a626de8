package integration_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-sif/ola/aggregators"
	"github.com/go-sif/ola/datasource/file"
	"github.com/go-sif/ola/datasource/parser/dsv"
	"github.com/go-sif/ola/driver"
	"github.com/go-sif/ola/schema"
	"github.com/go-sif/ola/sink"
	"github.com/stretchr/testify/require"
)

// countOpenFiles counts this process's file descriptors which refer to files under dir
func countOpenFiles(t *testing.T, dir string) int {
	fds, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skipf("open file descriptors cannot be listed: %v", err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	require.Nil(t, err)
	count := 0
	for _, fd := range fds {
		target, err := os.Readlink(filepath.Join("/proc/self/fd", fd.Name()))
		if err == nil && strings.HasPrefix(target, dir) {
			count++
		}
	}
	return count
}

func TestRetiredRunReleasesInputFile(t *testing.T) {
	dir := t.TempDir()
	var data strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&data, "store-%d,%d\n", i%3, i)
	}
	require.Nil(t, os.WriteFile(filepath.Join(dir, "sales.csv"), []byte(data.String()), 0644))

	sch, err := schema.ParseSchema("store:varstring,amount:float64")
	require.Nil(t, err)
	source, err := file.CreateDataSource(filepath.Join(dir, "*.csv"), dsv.CreateParser(&dsv.ParserConf{SliceSize: 5}), sch)
	require.Nil(t, err)

	// the value column does not exist, so the only aggregator is retired after the first slice
	rec := sink.CreateRecorder()
	agg, err := aggregators.CreateAvg(rec, &aggregators.Conf{ValueColumn: "price"})
	require.Nil(t, err)
	d, err := driver.CreateDriver(nil, agg)
	require.Nil(t, err)
	it, err := source.Open(context.Background())
	require.Nil(t, err)

	require.NotNil(t, d.Run(context.Background(), it))
	require.Equal(t, int64(1), d.Stats().GetNumSlicesProcessed())
	require.Equal(t, 0, rec.Len())
	require.Equal(t, 0, countOpenFiles(t, dir))
}
