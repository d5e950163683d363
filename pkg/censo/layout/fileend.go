package layout

// FileEndRecordType is the only field of record 99.
const FileEndRecordType = 1

var fileEndSchema = register(FileEnd, []FieldRule{
	f(FileEndRecordType, "record_type", "Record type", required(), oneOf("99")),
})
