package cmd

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

func testPointSeries() types.PointSeries {
	return types.PointSeries{
		{Time: types.NewTimeFromUnix(1700000000, 0), Value: 1.5},
		{Time: types.NewTimeFromUnix(1700086400, 0), Value: math.NaN()},
		{Time: types.NewTimeFromUnix(1700172800, 0), Value: math.Inf(1)},
	}
}

func Test_writeSeries(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSeries(&buf, testPointSeries(), OutputFormatJSON))

		var points []map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &points))
		require.Len(t, points, 3)
		assert.Equal(t, 1700000000.0, points[0]["time"])
		assert.Equal(t, 1.5, points[0]["value"])
		assert.Nil(t, points[1]["value"])
		assert.Nil(t, points[2]["value"])
	})

	t.Run("empty json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSeries(&buf, types.PointSeries(nil), OutputFormatJSON))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSeries(&buf, testPointSeries(), OutputFormatCSV))
		assert.Equal(t, "time,value\n1700000000,1.5\n1700086400,NaN\n1700172800,+Inf\n", buf.String())
	})

	t.Run("tsv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSeries(&buf, testPointSeries(), OutputFormatTSV))
		assert.Equal(t, "time\tvalue\n1700000000\t1.5\n1700086400\tNaN\n1700172800\t+Inf\n", buf.String())
	})

	t.Run("band csv", func(t *testing.T) {
		series := types.BandSeries{
			{Time: types.NewTimeFromUnix(1700000000, 0), Upper: 3, Middle: 2, Lower: 1},
		}

		var buf bytes.Buffer
		require.NoError(t, writeSeries(&buf, series, OutputFormatCSV))
		assert.Equal(t, "time,upper,middle,lower\n1700000000,3,2,1\n", buf.String())
	})

	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, writeSeries(&buf, testPointSeries(), "xml"))
	})
}
