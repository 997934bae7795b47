package csvplate

const validCSV = `idx,1,2,3,4,5,6,7,8,9,10,11,12
A,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control
B,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control
C,,,,,,,,,,,,
D,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control
E,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control
F,,,,,,,,,,,,
G,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control
H,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control`

const invalidRowCSV = `idx,1,2,3,4,5,6,7,8,9,10,11,12
A,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control
B,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control`

const invalidColCSV = `idx,1,2,3,4,5,6,7,8,9,10,11
A,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control
B,Treatment 1,Positive Control,Treatment 1,Positive Control,Treatment 1,Positive Control`
