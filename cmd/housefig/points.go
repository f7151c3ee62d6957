package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/housestyle"
	"github.com/midbel/slices"
)

func readPoints(file string, x, y int) ([]housestyle.Point[float64, float64], error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var (
		rs     = csv.NewReader(r)
		points []housestyle.Point[float64, float64]
	)
	rs.Read()
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if x >= len(row) || x < 0 || y >= len(row) || y <= 0 {
			return nil, fmt.Errorf("invalid x/y index columns given")
		}
		fx, err := strconv.ParseFloat(row[x], 64)
		if err != nil {
			return nil, err
		}
		fy, err := strconv.ParseFloat(row[y], 64)
		if err != nil {
			return nil, err
		}
		points = append(points, housestyle.NumberPoint(fx, fy))
	}
	return points, nil
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}

func parseSpan(str string) (float64, float64, error) {
	vs := strings.Split(str, ":")
	if len(vs) != 2 {
		return 0, 0, fmt.Errorf("invalid number of values given for span")
	}
	fst, err := strconv.ParseFloat(slices.Fst(vs), 64)
	if err != nil {
		return 0, 0, err
	}
	lst, err := strconv.ParseFloat(slices.Lst(vs), 64)
	if err != nil {
		return 0, 0, err
	}
	return fst, lst, nil
}
