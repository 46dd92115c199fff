package models

// BlockType enumerates the block variants the destination store accepts.
type BlockType string

const (
	BlockHeading2   BlockType = "heading_2"
	BlockHeading3   BlockType = "heading_3"
	BlockBulletItem BlockType = "bulleted_list_item"
	BlockParagraph  BlockType = "paragraph"
)

// Block is one typed unit of record content. Bold applies to the block's
// whole text run; inline formatting spans are not preserved.
type Block struct {
	Type BlockType
	Text string
	Bold bool
}

// BookmarkRecord is the destination-store page assembled by the save
// pipeline. Its identity is assigned by the store on creation; the pipeline
// never updates or deletes a record afterwards.
type BookmarkRecord struct {
	Title  string
	URL    string
	Type   string
	Tags   []string
	Blocks []Block
}
