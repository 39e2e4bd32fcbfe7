package render

// DefaultCSS is the stylesheet for rendered entry documents.
const DefaultCSS = `body {
  font-family: "Segoe UI", "PingFang SC", "Hiragino Sans GB", "Microsoft YaHei", sans-serif;
  margin: 32px;
  color: #0f172a;
  background: #f1f5f9;
}
.card {
  background: #ffffff;
  border-radius: 16px;
  box-shadow: 0 12px 32px rgba(15, 23, 42, 0.12);
  padding: 28px 32px;
  max-width: 980px;
  margin: 0 auto;
  border: 1px solid #e2e8f0;
}
.header {
  display: flex;
  flex-wrap: wrap;
  justify-content: space-between;
  align-items: baseline;
  gap: 12px;
}
.word {
  font-size: 36px;
  font-weight: 750;
  color: #0b1220;
  letter-spacing: 0.3px;
}
.meta {
  font-size: 13px;
  color: #64748b;
}
.meta a {
  color: #2563eb;
  text-decoration: none;
}
.meta a:hover {
  text-decoration: underline;
}
.pron {
  display: flex;
  flex-wrap: wrap;
  gap: 16px;
  margin-top: 12px;
  font-size: 15px;
}
.pron span {
  background: #e0f2fe;
  padding: 6px 12px;
  border-radius: 999px;
  color: #0f172a;
  border: 1px solid #bae6fd;
}
.section {
  margin-top: 24px;
}
.section-title {
  font-size: 18px;
  font-weight: 650;
  margin-bottom: 12px;
  color: #1e3a8a;
  display: inline-flex;
  align-items: center;
  gap: 8px;
}
.definitions {
  list-style: none;
  padding: 0;
  margin: 0;
  display: grid;
  gap: 12px;
}
.definition {
  background: #f8fafc;
  border-radius: 12px;
  padding: 14px 16px;
  line-height: 1.6;
  border: 1px solid #e2e8f0;
  display: grid;
  gap: 6px;
}
.definition-header {
  display: flex;
  flex-wrap: wrap;
  gap: 6px;
}
.tag {
  background: #ede9fe;
  color: #5b21b6;
  font-size: 12px;
  padding: 2px 8px;
  border-radius: 999px;
  border: 1px solid #ddd6fe;
}
.definition-text {
  font-size: 15px;
  color: #0f172a;
  white-space: pre-line;
}
.definition-index {
  font-weight: 700;
  color: #1d4ed8;
  font-size: 13px;
  margin-right: 6px;
}
.media {
  display: flex;
  gap: 16px;
  flex-wrap: wrap;
}
.media img {
  max-width: 240px;
  border-radius: 8px;
  border: 1px solid #e2e8f0;
  background: #fff;
}
.grid {
  display: grid;
  gap: 12px;
}
.footer {
  margin-top: 16px;
  font-size: 12px;
  color: #94a3b8;
}
`
