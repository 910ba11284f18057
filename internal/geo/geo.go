// Package geo содержит каноническое представление точек и полигонов юрисдикции.
//
// На входе API точки агентств приходят как пары широта/долгота, полигоны как
// плоское кольцо пар [lat, lng], а точки инцидентов как GeoJSON с порядком
// [lng, lat]. Внутри все хранится как геометрия go-geom с SRID 4326 и порядком
// осей X=долгота, Y=широта, и передается в PostGIS в формате EWKB.
package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

// SRID - WGS 84
const SRID = 4326

const (
	TypePoint   = "Point"
	TypePolygon = "Polygon"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be a number between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be a number between -180 and 180")
	ErrInvalidPolygon   = errors.New("jurisdiction must be a Polygon with at least 3 distinct [lat, lng] points")
)

// Point - точка в градусах
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewPoint создает точку и проверяет диапазоны координат
func NewPoint(lat, lng float64) (Point, error) {
	p := Point{Latitude: lat, Longitude: lng}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// Validate проверяет диапазоны координат
func (p Point) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// Geom возвращает точку go-geom (X=lng, Y=lat)
func (p Point) Geom() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Longitude, p.Latitude}).SetSRID(SRID)
}

// EWKB кодирует точку для ST_GeomFromEWKB
func (p Point) EWKB() ([]byte, error) {
	data, err := ewkb.Marshal(p.Geom(), ewkb.NDR)
	if err != nil {
		return nil, fmt.Errorf("geo: encode point: %w", err)
	}
	return data, nil
}

// PointFromEWKB декодирует точку, полученную через ST_AsEWKB
func PointFromEWKB(data []byte) (Point, error) {
	g, err := ewkb.Unmarshal(data)
	if err != nil {
		return Point{}, fmt.Errorf("geo: decode point: %w", err)
	}
	pt, ok := g.(*geom.Point)
	if !ok {
		return Point{}, fmt.Errorf("geo: expected Point, got %T", g)
	}
	return Point{Latitude: pt.Y(), Longitude: pt.X()}, nil
}

// GeoJSONPoint - точка в формате GeoJSON, coordinates = [lng, lat]
type GeoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewGeoJSONPoint конвертирует точку в GeoJSON
func NewGeoJSONPoint(p Point) GeoJSONPoint {
	return GeoJSONPoint{Type: TypePoint, Coordinates: []float64{p.Longitude, p.Latitude}}
}

// Point проверяет и конвертирует GeoJSON-точку. Пустой type трактуется как Point.
func (g GeoJSONPoint) Point() (Point, error) {
	if g.Type != "" && g.Type != TypePoint {
		return Point{}, fmt.Errorf("geo: unsupported geometry type %q", g.Type)
	}
	if len(g.Coordinates) != 2 {
		return Point{}, errors.New("geo: point coordinates must be [longitude, latitude]")
	}
	return NewPoint(g.Coordinates[1], g.Coordinates[0])
}

// Jurisdiction - замкнутое внешнее кольцо полигона юрисдикции
type Jurisdiction struct {
	ring []Point
}

// PolygonInput - полигон в формате API: плоское кольцо пар [lat, lng]
type PolygonInput struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// NewJurisdiction проверяет входной полигон и замыкает кольцо
func NewJurisdiction(in PolygonInput) (*Jurisdiction, error) {
	if in.Type != TypePolygon {
		return nil, ErrInvalidPolygon
	}

	ring := make([]Point, 0, len(in.Coordinates)+1)
	for i, pair := range in.Coordinates {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: vertex %d must be [lat, lng]", ErrInvalidPolygon, i)
		}
		p, err := NewPoint(pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		ring = append(ring, p)
	}

	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	if distinctVertices(ring) < 3 {
		return nil, ErrInvalidPolygon
	}
	return &Jurisdiction{ring: ring}, nil
}

func distinctVertices(ring []Point) int {
	seen := make(map[Point]struct{}, len(ring))
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// Ring возвращает копию замкнутого кольца
func (j *Jurisdiction) Ring() []Point {
	out := make([]Point, len(j.ring))
	copy(out, j.ring)
	return out
}

// Input возвращает полигон в формате API
func (j *Jurisdiction) Input() PolygonInput {
	coords := make([][]float64, len(j.ring))
	for i, p := range j.ring {
		coords[i] = []float64{p.Latitude, p.Longitude}
	}
	return PolygonInput{Type: TypePolygon, Coordinates: coords}
}

func (j *Jurisdiction) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.Input())
}

func (j *Jurisdiction) UnmarshalJSON(data []byte) error {
	var in PolygonInput
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	parsed, err := NewJurisdiction(in)
	if err != nil {
		return err
	}
	*j = *parsed
	return nil
}

// Geom возвращает полигон go-geom (X=lng, Y=lat)
func (j *Jurisdiction) Geom() *geom.Polygon {
	flat := make([]float64, 0, len(j.ring)*2)
	for _, p := range j.ring {
		flat = append(flat, p.Longitude, p.Latitude)
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}).SetSRID(SRID)
}

// EWKB кодирует полигон для ST_GeomFromEWKB
func (j *Jurisdiction) EWKB() ([]byte, error) {
	data, err := ewkb.Marshal(j.Geom(), ewkb.NDR)
	if err != nil {
		return nil, fmt.Errorf("geo: encode polygon: %w", err)
	}
	return data, nil
}

// JurisdictionFromEWKB декодирует полигон, полученный через ST_AsEWKB
func JurisdictionFromEWKB(data []byte) (*Jurisdiction, error) {
	g, err := ewkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("geo: decode polygon: %w", err)
	}
	poly, ok := g.(*geom.Polygon)
	if !ok {
		return nil, fmt.Errorf("geo: expected Polygon, got %T", g)
	}
	if poly.NumLinearRings() == 0 {
		return nil, ErrInvalidPolygon
	}

	coords := poly.LinearRing(0).Coords()
	ring := make([]Point, len(coords))
	for i, c := range coords {
		ring[i] = Point{Latitude: c[1], Longitude: c[0]}
	}
	return &Jurisdiction{ring: ring}, nil
}
