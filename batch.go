package sprite

// Vertex is one corner of the shared sprite quad as the GPU consumes it:
// position, texture coordinate, and a per-vertex color multiplier.
// Packed layout is 9 float32s (36 bytes).
type Vertex struct {
	Pos   [3]float32
	UV    [2]float32
	Color [4]float32
}

// InstanceData is the per-sprite attribute block: source rectangle, tint,
// and the evaluated transform matrix. Packed layout is 24 float32s
// (96 bytes).
type InstanceData struct {
	Src       [4]float32
	Color     [4]float32
	Transform Mat4
}

// quadVertices is the canonical unit quad in triangle-strip order. Every
// sprite is this quad; instance transforms scale and place it. It never
// changes across batches or frames.
var quadVertices = [4]Vertex{
	{Pos: [3]float32{0, 0, 0}, UV: [2]float32{0, 0}, Color: [4]float32{1, 1, 1, 1}},
	{Pos: [3]float32{0, 1, 0}, UV: [2]float32{0, 1}, Color: [4]float32{1, 1, 1, 1}},
	{Pos: [3]float32{1, 0, 0}, UV: [2]float32{1, 0}, Color: [4]float32{1, 1, 1, 1}},
	{Pos: [3]float32{1, 1, 0}, UV: [2]float32{1, 1}, Color: [4]float32{1, 1, 1, 1}},
}

// QuadVertexCount is the vertex count of every sprite draw call.
const QuadVertexCount = 4

// QuadVertices returns a copy of the shared unit quad in triangle-strip
// order: (0,0) (0,1) (1,0) (1,1), UVs matching positions, all-white
// vertex color.
func QuadVertices() []Vertex {
	verts := make([]Vertex, len(quadVertices))
	copy(verts, quadVertices[:])
	return verts
}

// SpriteBatch accumulates sprite instances that share one texture and
// renders them as a single instanced draw call. Batches with different
// textures must stay separate.
//
// Lifecycle: create bound to a texture, Insert any number of DrawInfos
// during a frame, hand to a DrawExecutor (which flattens it read-only),
// then either Clear for reuse or keep inserting. The batch never clears
// itself.
//
// Insertion order is preserved and is the only draw-order guarantee:
// instances render in the order they were inserted.
//
// A SpriteBatch is not safe for concurrent mutation; see the package
// documentation for the single-owner frame model.
type SpriteBatch struct {
	texture *Texture
	infos   []DrawInfo
}

// NewSpriteBatch creates a batch bound to tex. The batch keeps the texture
// pointer for its lifetime; the texture must outlive every frame the batch
// is drawn in.
func NewSpriteBatch(tex *Texture) *SpriteBatch {
	return &SpriteBatch{texture: tex}
}

// Insert appends one sprite instance. There is no capacity limit; callers
// size for their worst-case instance count.
func (b *SpriteBatch) Insert(info DrawInfo) {
	b.infos = append(b.infos, info)
}

// Len returns the number of inserted instances.
func (b *SpriteBatch) Len() int {
	return len(b.infos)
}

// Clear removes all instances, keeping allocated capacity for reuse across
// frames.
func (b *SpriteBatch) Clear() {
	b.infos = b.infos[:0]
}

// Texture returns the texture the batch is bound to.
func (b *SpriteBatch) Texture() *Texture {
	return b.texture
}

// Flatten produces the draw data: the shared quad vertices and one
// InstanceData per inserted DrawInfo, in insertion order.
//
// Flatten is read-only: calling it repeatedly without an intervening
// Insert yields identical output. An empty batch flattens to the quad and
// zero instances; executors bind and skip the draw without error.
func (b *SpriteBatch) Flatten() ([]Vertex, []InstanceData) {
	verts := QuadVertices()
	if len(b.infos) == 0 {
		return verts, nil
	}
	instances := make([]InstanceData, len(b.infos))
	for i := range b.infos {
		instances[i] = b.infos[i].Instance()
	}
	return verts, instances
}
